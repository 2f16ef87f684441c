package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/estate-api/internal/api/httpx"
	"github.com/baharkarakas/estate-api/internal/api/validate"
	"github.com/baharkarakas/estate-api/internal/middleware"
	"github.com/baharkarakas/estate-api/internal/services"
)

// writeServiceError maps service errors to HTTP responses. forbiddenMsg is
// used for ownership or role failures so each route can name its action.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, forbiddenMsg string) {
	var verrs validate.Errs
	switch {
	case errors.As(err, &verrs):
		httpx.WriteError(w, http.StatusBadRequest, "validation_failed", "validation failed", verrs)
	case errors.Is(err, services.ErrEmailTaken):
		httpx.WriteError(w, http.StatusConflict, "email_taken", "User already exists", nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Invalid email or password", nil)
	case errors.Is(err, services.ErrForbidden):
		httpx.WriteError(w, http.StatusUnauthorized, "not_authorized", forbiddenMsg, nil)
	case errors.Is(err, services.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Property not found", nil)
	default:
		slog.Error("request failed",
			"request_id", middleware.RequestIDFrom(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}

func writeBadJSON(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid JSON body", nil)
}
