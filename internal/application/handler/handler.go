// Package handler exposes the applicant's submitted applications.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"certflow/internal/application/store"
	"certflow/pkg/platform/httputil"
	"certflow/pkg/requestcontext"
)

type Handler struct {
	store  store.ApplicationStore
	logger *slog.Logger
}

func NewHandler(store store.ApplicationStore, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/me/applications", h.List)
}

// List returns the caller's submitted applications, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := requestcontext.UserID(r.Context())
	applications, err := h.store.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list applications",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"applications": applications})
}
