// Package handler exposes the preference endpoints.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"certflow/internal/preferences"
	"certflow/internal/preferences/store"
	dErrors "certflow/pkg/domain-errors"
	"certflow/pkg/platform/httputil"
	"certflow/pkg/requestcontext"
)

type Handler struct {
	store  store.PreferenceStore
	logger *slog.Logger
}

func NewHandler(store store.PreferenceStore, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/me/preferences", h.Get)
	r.Patch("/me/preferences", h.Patch)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := requestcontext.UserID(r.Context())
	httputil.WriteJSON(w, http.StatusOK, h.store.Get(r.Context(), userID))
}

// Patch merges the supplied fields over the stored record. Absent fields
// are left alone.
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	userID := requestcontext.UserID(r.Context())

	var patch preferences.Preferences
	if err := httputil.DecodeJSON(r, &patch); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if patch.Industry != nil && !patch.Industry.IsValid() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "unknown industry"))
		return
	}
	if patch.CertificationLevel != nil && !patch.CertificationLevel.IsValid() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "unknown certification level"))
		return
	}

	if err := h.store.Merge(r.Context(), userID, patch); err != nil {
		h.logger.Warn("preference merge failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.store.Get(r.Context(), userID))
}
