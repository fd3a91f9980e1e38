// Package service orchestrates the wizard: session lifecycle, form writes,
// step transitions, program selection and submission.
package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	appstore "certflow/internal/application/store"
	catalogstore "certflow/internal/catalog/store"
	"certflow/internal/platform/metrics"
	prefstore "certflow/internal/preferences/store"
	profilestore "certflow/internal/profile/store"
	"certflow/internal/wizard/models"
	"certflow/internal/wizard/rules"
	sessionstore "certflow/internal/wizard/store/session"
	dErrors "certflow/pkg/domain-errors"
	"certflow/pkg/platform/audit"
	"certflow/pkg/requestcontext"
)

// Result is the outcome of a wizard operation. A non-OK Decision means the
// operation was blocked by a gate or policy; the session reflects the
// unchanged state and Decision.Reason is the notification to surface.
type Result struct {
	Session   *models.Session
	Decision  rules.Decision
	Submitted bool
}

type Service struct {
	sessions     sessionstore.Store
	prefs        prefstore.PreferenceStore
	profiles     profilestore.ProfileStore
	catalog      catalogstore.CatalogStore
	applications appstore.ApplicationStore

	logger   *slog.Logger
	auditPub audit.Publisher
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditPublisher(pub audit.Publisher) Option {
	return func(s *Service) { s.auditPub = pub }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) { s.tracer = tracer }
}

func NewService(
	sessions sessionstore.Store,
	prefs prefstore.PreferenceStore,
	profiles profilestore.ProfileStore,
	catalog catalogstore.CatalogStore,
	applications appstore.ApplicationStore,
	opts ...Option,
) *Service {
	s := &Service{
		sessions:     sessions,
		prefs:        prefs,
		profiles:     profiles,
		catalog:      catalog,
		applications: applications,
		logger:       slog.Default(),
		tracer:       otel.Tracer("certflow/wizard"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Session returns the applicant's wizard session, creating and seeding one
// on first visit: identity fields come from the profile, the industry and
// certification-level choices and the resume step from stored preferences.
func (s *Service) Session(ctx context.Context) (*models.Session, error) {
	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "no authenticated user")
	}

	session, err := s.sessions.Get(ctx, userID)
	if err == nil {
		return session, nil
	}
	if !dErrors.HasCode(err, dErrors.CodeNotFound) {
		return nil, err
	}

	session = models.NewSession(userID, requestcontext.Now(ctx))
	session.DeviceName = requestcontext.DeviceName(ctx)
	s.seedSession(ctx, session)

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) seedSession(ctx context.Context, session *models.Session) {
	if profile, err := s.profiles.Get(ctx, session.UserID); err == nil {
		session.Form.FirstName = profile.FirstName
		session.Form.LastName = profile.LastName
		session.Form.Email = profile.Email
		session.Form.Phone = profile.Phone
	} else if !dErrors.HasCode(err, dErrors.CodeNotFound) {
		s.logger.Warn("profile seed failed, starting blank",
			slog.String("user_id", session.UserID.String()),
			slog.String("error", err.Error()))
	}

	prefs := s.prefs.Get(ctx, session.UserID)
	if prefs.Industry != nil {
		session.Form.Industry = *prefs.Industry
	}
	if prefs.CertificationLevel != nil {
		session.Form.CertificationLevel = *prefs.CertificationLevel
	}
	if prefs.LastVisitedStep != nil {
		session.StepIndex = clampStep(*prefs.LastVisitedStep)
	}
	session.Validation = rules.ValidateForm(requestcontext.Now(ctx), session.Form)
}

// UpdateForm replaces the session's form data and recomputes the inline
// validation snapshot. Industry and certification-level choices are echoed
// to the preference store best-effort.
func (s *Service) UpdateForm(ctx context.Context, form models.FormData) (*models.Session, error) {
	session, err := s.Session(ctx)
	if err != nil {
		return nil, err
	}

	previous := session.Form
	// Program selection has its own gated operations.
	form.SelectedPrograms = previous.SelectedPrograms

	session.Form = form
	session.Validation = rules.ValidateForm(requestcontext.Now(ctx), form)
	session.UpdatedAt = requestcontext.Now(ctx)

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	if form.Industry != previous.Industry && form.Industry.IsValid() {
		s.savePreference(ctx, session.UserID, prefIndustry(form.Industry))
	}
	if form.CertificationLevel != previous.CertificationLevel && form.CertificationLevel.IsValid() {
		s.savePreference(ctx, session.UserID, prefCertificationLevel(form.CertificationLevel))
	}
	return session, nil
}

func clampStep(index int) int {
	if index < 0 {
		return 0
	}
	if index >= len(models.WizardSteps) {
		return len(models.WizardSteps) - 1
	}
	return index
}

func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.auditPub == nil {
		return
	}
	if err := s.auditPub.Emit(ctx, event); err != nil {
		s.logger.Warn("failed to emit audit event",
			slog.String("action", event.Action),
			slog.String("error", err.Error()))
	}
}
