package middleware

import (
	"net/http"

	"github.com/baharkarakas/estate-api/internal/access"
	"github.com/baharkarakas/estate-api/internal/api/httpx"
	"github.com/baharkarakas/estate-api/internal/metrics"
)

// RequireRole applies the role gate for op. It must run after Auth.
func RequireRole(op access.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := IdentityFrom(r.Context())
			if !id.Authenticated() || !access.RoleAllows(id.Role, op) {
				metrics.AccessDenied.WithLabelValues(string(op)).Inc()
				httpx.WriteError(w, http.StatusUnauthorized, "not_authorized",
					"User role "+string(id.Role)+" is not authorized to access this route", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
