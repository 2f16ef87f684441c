// internal/api/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/baharkarakas/estate-api/internal/api/httpx"
	"github.com/baharkarakas/estate-api/internal/services"
)

type AuthHandler struct {
	Users *services.UserService
}

func NewAuthHandler(us *services.UserService) *AuthHandler {
	return &AuthHandler{Users: us}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterInput
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadJSON(w)
		return
	}
	u, err := h.Users.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, u)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadJSON(w)
		return
	}
	sess, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sess)
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshReq
	if err := httpx.DecodeJSON(w, r, &req); err != nil || req.RefreshToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "refresh_token required", nil)
		return
	}
	sess, err := h.Users.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sess)
}
