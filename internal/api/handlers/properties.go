package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/estate-api/internal/api/httpx"
	"github.com/baharkarakas/estate-api/internal/middleware"
	"github.com/baharkarakas/estate-api/internal/models"
	"github.com/baharkarakas/estate-api/internal/services"
)

type PropertyHandler struct {
	Props *services.PropertyService
}

func NewPropertyHandler(ps *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{Props: ps}
}

// POST /api/properties
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreatePropertyInput
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadJSON(w)
		return
	}
	p, err := h.Props.Create(r.Context(), middleware.IdentityFrom(r.Context()), req)
	if err != nil {
		writeServiceError(w, r, err, "Not authorized to create a property")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

// GET /api/properties
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Props.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

// GET /api/properties/{id}
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Props.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// PUT /api/properties/{id}
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.PropertyPatch
	if err := httpx.DecodeJSON(w, r, &patch); err != nil {
		writeBadJSON(w)
		return
	}
	p, err := h.Props.Update(r.Context(), middleware.IdentityFrom(r.Context()), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeServiceError(w, r, err, "Not authorized to update this property")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// DELETE /api/properties/{id}
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Props.Remove(r.Context(), middleware.IdentityFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err, "Not authorized to delete this property")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Property removed"})
}
