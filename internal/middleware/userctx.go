package middleware

import (
	"context"

	"github.com/baharkarakas/estate-api/internal/access"
)

type userKey struct{}

func WithIdentity(ctx context.Context, id access.Identity) context.Context {
	return context.WithValue(ctx, userKey{}, id)
}

// IdentityFrom returns the zero Identity when the request was not authenticated.
func IdentityFrom(ctx context.Context) access.Identity {
	if v := ctx.Value(userKey{}); v != nil {
		if id, ok := v.(access.Identity); ok {
			return id
		}
	}
	return access.Identity{}
}
