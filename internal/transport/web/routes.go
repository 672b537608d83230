package web

import (
	"net/http"

	"github.com/heartmarshall/yatube-backend/internal/transport/middleware"
)

// Routes registers the HTML pages on mux. loginLimit wraps only the login POST.
// Unmatched paths fall through to the 404 page.
func (h *Handler) Routes(mux *http.ServeMux, loginLimit middleware.Middleware) {
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("GET /group/{slug}/{$}", h.GroupPosts)
	mux.HandleFunc("GET /profile/{username}/{$}", h.Profile)
	mux.HandleFunc("GET /posts/{id}/{$}", h.PostDetail)

	mux.HandleFunc("GET /create/{$}", h.CreateForm)
	mux.HandleFunc("POST /create/{$}", h.Create)
	mux.HandleFunc("GET /posts/{id}/edit/{$}", h.EditForm)
	mux.HandleFunc("POST /posts/{id}/edit/{$}", h.Edit)

	mux.HandleFunc("GET /auth/login/{$}", h.LoginForm)
	mux.Handle("POST /auth/login/{$}", loginLimit(http.HandlerFunc(h.Login)))
	mux.HandleFunc("GET /auth/signup/{$}", h.SignupForm)
	mux.HandleFunc("POST /auth/signup/{$}", h.Signup)
	mux.HandleFunc("POST /auth/logout/{$}", h.Logout)

	mux.HandleFunc("/", h.NotFound)
}
