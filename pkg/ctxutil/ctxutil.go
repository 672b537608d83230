// Package ctxutil carries per-request values (the signed-in user and the
// request id) through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	usernameKey  struct{}
	requestIDKey struct{}
)

// WithUserID stores the signed-in user's id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns the signed-in user's id. It reports false for an
// anonymous request, including one that carries uuid.Nil.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithUsername stores the signed-in user's name.
func WithUsername(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, usernameKey{}, name)
}

// UsernameFromCtx returns the signed-in user's name, or "" when anonymous.
func UsernameFromCtx(ctx context.Context) string {
	name, _ := ctx.Value(usernameKey{}).(string)
	return name
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request id, or "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
