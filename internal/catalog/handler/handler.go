// Package handler exposes the read-only catalog endpoints.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"certflow/internal/catalog/models"
	"certflow/internal/catalog/store"
	"certflow/internal/eligibility"
	sessionstore "certflow/internal/wizard/store/session"
	id "certflow/pkg/domain"
	dErrors "certflow/pkg/domain-errors"
	"certflow/pkg/platform/httputil"
	"certflow/pkg/requestcontext"
)

type Handler struct {
	catalog  store.CatalogStore
	sessions sessionstore.Store
	logger   *slog.Logger
}

func NewHandler(catalog store.CatalogStore, sessions sessionstore.Store, logger *slog.Logger) *Handler {
	return &Handler{catalog: catalog, sessions: sessions, logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/catalog/programs", h.ListPrograms)
	r.Get("/catalog/roles", h.ListRoles)
	r.Get("/catalog/courses", h.ListCourses)
}

// programView is a catalog entry annotated with the requesting applicant's
// eligibility for it.
type programView struct {
	models.Program
	Eligibility eligibility.Status `json:"eligibility"`
}

// ListPrograms returns the program catalog ordered by provider name, each
// entry carrying the caller's eligibility status.
func (h *Handler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.catalog.ListPrograms(r.Context())
	if err != nil {
		h.logger.Error("failed to list programs", slog.String("error", err.Error()))
		httputil.WriteError(w, err)
		return
	}

	level := h.applicantLevel(r)
	views := make([]programView, 0, len(programs))
	for _, p := range programs {
		views = append(views, programView{
			Program:     p,
			Eligibility: eligibility.Evaluate(level, p.RequiredLevel),
		})
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"programs": views})
}

func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.catalog.ListRoles(r.Context())
	if err != nil {
		h.logger.Error("failed to list roles", slog.String("error", err.Error()))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"roles": roles})
}

func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.catalog.ListCourses(r.Context())
	if err != nil {
		h.logger.Error("failed to list courses", slog.String("error", err.Error()))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"courses": courses})
}

// applicantLevel reads the caller's chosen certification level from their
// wizard session. No session or no choice yet means an unset level, which
// renders every program as pending.
func (h *Handler) applicantLevel(r *http.Request) id.CertificationLevel {
	userID := requestcontext.UserID(r.Context())
	if userID.IsNil() {
		return ""
	}
	session, err := h.sessions.Get(r.Context(), userID)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.Warn("failed to load session for eligibility",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()))
		}
		return ""
	}
	return session.Form.CertificationLevel
}
