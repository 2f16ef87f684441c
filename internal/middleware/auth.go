// internal/middleware/auth.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/baharkarakas/estate-api/internal/access"
	"github.com/baharkarakas/estate-api/internal/api/httpx"
	"github.com/baharkarakas/estate-api/internal/auth"
	"github.com/baharkarakas/estate-api/internal/models"
)

type AuthMiddleware struct {
	TM *auth.TokenManager
}

func NewAuthMiddleware(tm *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{TM: tm}
}

// Auth requires a valid access token and stores the caller's identity in the context.
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if len(ah) < len("Bearer ") || !strings.EqualFold(ah[:len("Bearer ")], "bearer ") {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Not authorized, no token", nil)
			return
		}
		token := strings.TrimSpace(ah[len("Bearer "):])

		claims, err := m.TM.ParseAccess(token)
		if err != nil {
			msg := "Not authorized, token failed"
			if errors.Is(err, auth.ErrExpiredToken) {
				msg = "Not authorized, token expired"
			}
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", msg, nil)
			return
		}
		role := models.Role(claims.Role)
		if !role.Valid() {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Not authorized, token failed", nil)
			return
		}
		ctx := WithIdentity(r.Context(), access.Identity{UserID: claims.UserID, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
