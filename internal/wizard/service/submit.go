package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	appmodels "certflow/internal/application/models"
	"certflow/internal/wizard/models"
	"certflow/internal/wizard/rules"
	id "certflow/pkg/domain"
	dErrors "certflow/pkg/domain-errors"
	"certflow/pkg/platform/audit"
	"certflow/pkg/requestcontext"
)

// Submit persists the completed application and resets the wizard. It is
// all-or-nothing: any failure before the insert leaves the session, form
// and preferences exactly as they were.
func (s *Service) Submit(ctx context.Context) (*Result, error) {
	session, err := s.Session(ctx)
	if err != nil {
		return nil, err
	}
	return s.submit(ctx, session)
}

func (s *Service) submit(ctx context.Context, session *models.Session) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "wizard.submit")
	defer span.End()

	form := session.Form
	span.SetAttributes(
		attribute.String("user_id", session.UserID.String()),
		attribute.String("role_id", form.SelectedRole.String()),
		attribute.String("certification_level", form.CertificationLevel.String()),
	)

	if strings.TrimSpace(form.SelectedRole.String()) == "" {
		return s.rejectSubmission(ctx, span, session, "missing_role",
			"Select a role before submitting your application.")
	}
	experience, ok := parseExperience(form.Amount)
	if !ok {
		return s.rejectSubmission(ctx, span, session, "invalid_experience",
			"Your years of experience must be a non-negative number.")
	}

	application := &appmodels.Application{
		ID:                     id.ApplicationID(uuid.New()),
		UserID:                 session.UserID,
		RoleID:                 form.SelectedRole,
		Industry:               form.Industry,
		CertificationLevel:     form.CertificationLevel,
		TotalExperienceYears:   experience,
		SegmentExperienceYears: form.YearsOfExperience,
		Status:                 appmodels.StatusSubmitted,
		CreatedAt:              requestcontext.Now(ctx),
	}

	if err := s.applications.Insert(ctx, application); err != nil {
		if s.metrics != nil {
			s.metrics.SubmissionFailures.WithLabelValues(string(dErrors.CodeOf(err))).Inc()
		}
		span.SetStatus(codes.Error, "insert failed")
		s.emitAudit(ctx, audit.Event{
			UserID:   session.UserID,
			Action:   string(audit.EventSubmissionRejected),
			Subject:  form.SelectedRole.String(),
			Decision: "blocked",
			Reason:   dErrors.MessageOf(err),
		})
		s.logger.Warn("application submission failed",
			slog.String("user_id", session.UserID.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	session.Reset(requestcontext.Now(ctx))
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "application submitted but session reset failed")
	}
	s.savePreference(ctx, session.UserID, prefLastVisitedStep(0))

	s.emitAudit(ctx, audit.Event{
		UserID:   session.UserID,
		Action:   string(audit.EventApplicationSubmitted),
		Subject:  application.ID.String(),
		Decision: "allowed",
	})
	if s.metrics != nil {
		s.metrics.ApplicationsSubmitted.Inc()
	}
	s.logger.Info("application submitted",
		slog.String("user_id", session.UserID.String()),
		slog.String("application_id", application.ID.String()),
		slog.String("role_id", application.RoleID.String()))

	return &Result{Session: session, Decision: rules.Decision{OK: true}, Submitted: true}, nil
}

// rejectSubmission records a blocked submission attempt without touching
// any state.
func (s *Service) rejectSubmission(ctx context.Context, span trace.Span, session *models.Session, reason, message string) (*Result, error) {
	if s.metrics != nil {
		s.metrics.SubmissionFailures.WithLabelValues(reason).Inc()
	}
	span.SetStatus(codes.Error, reason)
	s.emitAudit(ctx, audit.Event{
		UserID:   session.UserID,
		Action:   string(audit.EventSubmissionRejected),
		Subject:  session.Form.SelectedRole.String(),
		Decision: "blocked",
		Reason:   reason,
	})
	return &Result{Session: session, Decision: rules.Decision{
		Field:  "submission",
		Reason: message,
	}}, nil
}

func parseExperience(amount string) (int, bool) {
	years, err := strconv.Atoi(strings.TrimSpace(amount))
	if err != nil || years < 0 {
		return 0, false
	}
	return years, true
}
