// Package handler exposes the profile endpoints.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"certflow/internal/profile/models"
	"certflow/internal/profile/service"
	"certflow/pkg/platform/httputil"
	"certflow/pkg/requestcontext"
)

type Handler struct {
	service *service.Service
	logger  *slog.Logger
}

func NewHandler(svc *service.Service, logger *slog.Logger) *Handler {
	return &Handler{service: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/me/profile", h.Get)
	r.Put("/me/profile", h.Update)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := requestcontext.UserID(r.Context())
	profile, err := h.service.Get(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID := requestcontext.UserID(r.Context())

	var update models.Update
	if err := httputil.DecodeJSON(r, &update); err != nil {
		httputil.WriteError(w, err)
		return
	}

	profile, err := h.service.Update(r.Context(), userID, update)
	if err != nil {
		h.logger.Warn("profile update failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}
