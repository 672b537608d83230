package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/internal/service/auth"
	"github.com/heartmarshall/yatube-backend/internal/transport/middleware"
)

// LoginForm handles GET /auth/login/.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, TmplLogin, AuthFormView{
		Base:   base(r),
		Next:   r.URL.Query().Get("next"),
		Errors: map[string][]string{},
	})
}

// Login handles POST /auth/login/. On success the session cookie is set and
// the user goes to next when it is a local path.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	next := r.PostForm.Get("next")
	if next == "" {
		next = r.URL.Query().Get("next")
	}
	input := auth.LoginInput{
		Username: r.PostForm.Get(auth.FieldUsername),
		Password: r.PostForm.Get(auth.FieldPassword),
	}

	session, err := h.accounts.Login(r.Context(), input)
	if err != nil {
		h.authFormError(w, r, TmplLogin, input.Username, next, err)
		return
	}

	h.setSession(w, session)
	http.Redirect(w, r, safeNext(next), http.StatusFound)
}

// SignupForm handles GET /auth/signup/.
func (h *Handler) SignupForm(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, TmplSignup, AuthFormView{Base: base(r), Errors: map[string][]string{}})
}

// Signup handles POST /auth/signup/. A new account is signed in right away.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	input := auth.RegisterInput{
		Username:        r.PostForm.Get(auth.FieldUsername),
		Password:        r.PostForm.Get(auth.FieldPassword),
		PasswordConfirm: r.PostForm.Get(auth.FieldPasswordConfirm),
	}

	session, err := h.accounts.Register(r.Context(), input)
	if err != nil {
		h.authFormError(w, r, TmplSignup, input.Username, "", err)
		return
	}

	h.setSession(w, session)
	http.Redirect(w, r, indexURL(), http.StatusFound)
}

// Logout handles POST /auth/logout/.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c := middleware.ExpiredCookie(h.cfg.CookieName)
	c.Secure = h.cfg.CookieSecure
	http.SetCookie(w, c)
	http.Redirect(w, r, indexURL(), http.StatusFound)
}

func (h *Handler) authFormError(w http.ResponseWriter, r *http.Request, tmpl, username, next string, err error) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		h.handleError(w, r, err)
		return
	}

	h.log.DebugContext(r.Context(), "auth form rejected",
		slog.String("template", tmpl),
		slog.String("error", ve.Error()))

	h.page(w, r, http.StatusOK, tmpl, AuthFormView{
		Base:     base(r),
		Username: username,
		Errors:   ve.ByField(),
		Next:     next,
	})
}

func (h *Handler) setSession(w http.ResponseWriter, s *auth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return false
	}
	return true
}
