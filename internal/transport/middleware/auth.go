package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Identity, error)
}

// Session resolves the session cookie into the request identity.
// Requests without a cookie pass through as anonymous. A cookie that fails
// validation is expired on the response and the request continues anonymous.
func Session(validator tokenValidator, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := validator.ValidateToken(r.Context(), token)
			if err != nil || !id.IsAuthenticated() {
				http.SetCookie(w, ExpiredCookie(cookieName))
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), id.UserID)
			ctx = ctxutil.WithUsername(ctx, id.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExpiredCookie returns a cookie that makes the browser drop the session.
func ExpiredCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func sessionToken(r *http.Request, cookieName string) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
