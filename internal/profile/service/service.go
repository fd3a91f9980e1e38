// Package service implements profile reads and updates.
package service

import (
	"context"
	"log/slog"
	"strings"

	"certflow/internal/profile/models"
	"certflow/internal/profile/store"
	id "certflow/pkg/domain"
	dErrors "certflow/pkg/domain-errors"
	"certflow/pkg/platform/audit"
	"certflow/pkg/requestcontext"
)

type Service struct {
	store    store.ProfileStore
	logger   *slog.Logger
	auditPub audit.Publisher
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditPublisher(pub audit.Publisher) Option {
	return func(s *Service) { s.auditPub = pub }
}

func NewService(store store.ProfileStore, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get loads the applicant's profile.
func (s *Service) Get(ctx context.Context, userID id.UserID) (*models.Profile, error) {
	return s.store.Get(ctx, userID)
}

// Update applies a partial change to the applicant's profile, creating the
// record on first write. Set fields must be non-blank.
func (s *Service) Update(ctx context.Context, userID id.UserID, update models.Update) (*models.Profile, error) {
	profile, err := s.store.Get(ctx, userID)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil, err
		}
		profile = &models.Profile{UserID: userID}
	}

	if update.FirstName != nil {
		if strings.TrimSpace(*update.FirstName) == "" {
			return nil, dErrors.New(dErrors.CodeInvalidInput, "first name must not be empty")
		}
		profile.FirstName = strings.TrimSpace(*update.FirstName)
	}
	if update.LastName != nil {
		if strings.TrimSpace(*update.LastName) == "" {
			return nil, dErrors.New(dErrors.CodeInvalidInput, "last name must not be empty")
		}
		profile.LastName = strings.TrimSpace(*update.LastName)
	}
	if update.Phone != nil {
		if strings.TrimSpace(*update.Phone) == "" {
			return nil, dErrors.New(dErrors.CodeInvalidInput, "phone must not be empty")
		}
		profile.Phone = strings.TrimSpace(*update.Phone)
	}
	profile.UpdatedAt = requestcontext.Now(ctx)

	if err := s.store.Save(ctx, profile); err != nil {
		return nil, err
	}

	s.emitAudit(ctx, audit.Event{
		UserID:   userID,
		Action:   string(audit.EventProfileUpdated),
		Subject:  "profile",
		Decision: "allowed",
	})
	return profile, nil
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
