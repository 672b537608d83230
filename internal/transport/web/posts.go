package web

import (
	"errors"
	"net/http"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/internal/service/post"
)

// CreateForm handles GET /create/.
func (h *Handler) CreateForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.posts.NewPostForm(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.page(w, r, http.StatusOK, TmplCreatePost, PostFormView{Base: base(r), Form: form})
}

// Create handles POST /create/. Success redirects to the author's profile.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := h.parsePostInput(w, r)
	if !ok {
		return
	}

	created, form, err := h.posts.CreatePost(r.Context(), input)
	if err != nil {
		if form != nil && errors.Is(err, domain.ErrValidation) {
			h.page(w, r, http.StatusOK, TmplCreatePost, PostFormView{Base: base(r), Form: form})
			return
		}
		h.handleError(w, r, err)
		return
	}

	http.Redirect(w, r, profileURL(created.AuthorUsername), http.StatusFound)
}

// EditForm handles GET /posts/{id}/edit/.
func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	form, _, err := h.posts.EditPostForm(r.Context(), id)
	if err != nil {
		h.editError(w, r, id, err)
		return
	}

	h.page(w, r, http.StatusOK, TmplCreatePost, PostFormView{Base: base(r), Form: form, IsEdit: true})
}

// Edit handles POST /posts/{id}/edit/. Success redirects to the post.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	input, ok := h.parsePostInput(w, r)
	if !ok {
		return
	}

	updated, form, err := h.posts.UpdatePost(r.Context(), id, input)
	if err != nil {
		if form != nil && errors.Is(err, domain.ErrValidation) {
			h.page(w, r, http.StatusOK, TmplCreatePost, PostFormView{Base: base(r), Form: form, IsEdit: true})
			return
		}
		h.editError(w, r, id, err)
		return
	}

	http.Redirect(w, r, postURL(updated.ID), http.StatusFound)
}

// editError sends a signed-in non-author back to the post.
func (h *Handler) editError(w http.ResponseWriter, r *http.Request, id int64, err error) {
	if errors.Is(err, domain.ErrForbidden) {
		http.Redirect(w, r, postURL(id), http.StatusFound)
		return
	}
	h.handleError(w, r, err)
}

func (h *Handler) parsePostInput(w http.ResponseWriter, r *http.Request) (post.PostInput, bool) {
	if !h.parseForm(w, r) {
		return post.PostInput{}, false
	}
	return post.PostInput{
		Text:  r.PostForm.Get(post.FieldText),
		Group: r.PostForm.Get(post.FieldGroup),
	}, true
}
