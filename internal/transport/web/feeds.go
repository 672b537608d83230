package web

import (
	"net/http"
)

// Index handles GET /.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	feed, err := h.posts.ListAll(r.Context(), r.URL.Query().Get("page"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.page(w, r, http.StatusOK, TmplIndex, IndexView{Base: base(r), Page: feed.Page})
}

// GroupPosts handles GET /group/{slug}/.
func (h *Handler) GroupPosts(w http.ResponseWriter, r *http.Request) {
	feed, err := h.posts.ListByGroup(r.Context(), r.PathValue("slug"), r.URL.Query().Get("page"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.page(w, r, http.StatusOK, TmplGroupList, GroupView{
		Base:  base(r),
		Group: feed.Group,
		Page:  feed.Page,
	})
}

// Profile handles GET /profile/{username}/.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	feed, err := h.posts.ListByAuthor(r.Context(), r.PathValue("username"), r.URL.Query().Get("page"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.page(w, r, http.StatusOK, TmplProfile, ProfileView{
		Base:      base(r),
		Author:    feed.Author,
		PostCount: feed.PostCount,
		Page:      feed.Page,
	})
}

// PostDetail handles GET /posts/{id}/.
func (h *Handler) PostDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	detail, err := h.posts.GetDetail(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.page(w, r, http.StatusOK, TmplPostDetail, DetailView{
		Base:            base(r),
		Post:            detail.Post,
		AuthorPostCount: detail.AuthorPostCount,
		CanEdit:         detail.CanEdit,
	})
}
