// Package handler exposes the wizard endpoints.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"certflow/internal/wizard/models"
	"certflow/internal/wizard/service"
	id "certflow/pkg/domain"
	dErrors "certflow/pkg/domain-errors"
	"certflow/pkg/platform/httputil"
)

type Handler struct {
	service *service.Service
	logger  *slog.Logger
}

func NewHandler(svc *service.Service, logger *slog.Logger) *Handler {
	return &Handler{service: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/wizard", h.GetSession)
	r.Put("/wizard/form", h.UpdateForm)
	r.Post("/wizard/next", h.Next)
	r.Post("/wizard/back", h.Back)
	r.Post("/wizard/step", h.JumpStep)
	r.Post("/wizard/tab", h.JumpTab)
	r.Post("/wizard/programs", h.SelectProgram)
	r.Delete("/wizard/programs/{programID}", h.DeselectProgram)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Session(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sessionView(session))
}

func (h *Handler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	var form models.FormData
	if err := httputil.DecodeJSON(r, &form); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if form.CertificationLevel != "" && !form.CertificationLevel.IsValid() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "unknown certification level"))
		return
	}
	if form.Industry != "" && !form.Industry.IsValid() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "unknown industry"))
		return
	}

	session, err := h.service.UpdateForm(r.Context(), form)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sessionView(session))
}

func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	h.writeResult(w)(h.service.Next(r.Context()))
}

func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	h.writeResult(w)(h.service.Back(r.Context()))
}

type jumpRequest struct {
	Index int `json:"index"`
}

func (h *Handler) JumpStep(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.writeResult(w)(h.service.JumpStep(r.Context(), req.Index))
}

func (h *Handler) JumpTab(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.writeResult(w)(h.service.JumpTab(r.Context(), req.Index))
}

type selectProgramRequest struct {
	ProgramID string `json:"programId"`
}

func (h *Handler) SelectProgram(w http.ResponseWriter, r *http.Request) {
	var req selectProgramRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if req.ProgramID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "programId is required"))
		return
	}
	h.writeResult(w)(h.service.SelectProgram(r.Context(), id.ProgramID(req.ProgramID)))
}

func (h *Handler) DeselectProgram(w http.ResponseWriter, r *http.Request) {
	programID := chi.URLParam(r, "programID")
	if programID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "program id is required"))
		return
	}
	h.writeResult(w)(h.service.DeselectProgram(r.Context(), id.ProgramID(programID)))
}

// writeResult renders a wizard operation outcome. Blocked operations are
// still 200s: the notification travels in the body and the session state
// is unchanged.
func (h *Handler) writeResult(w http.ResponseWriter) func(*service.Result, error) {
	return func(result *service.Result, err error) {
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, resultView(result))
	}
}
