package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"certflow/internal/profile/models"
	"certflow/internal/profile/store/memory"
	id "certflow/pkg/domain"
	dErrors "certflow/pkg/domain-errors"
	"certflow/pkg/platform/audit"
	auditmemory "certflow/pkg/platform/audit/store/memory"
	"certflow/pkg/platform/audit/publisher"
	"certflow/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	store    *memory.InMemoryStore
	auditLog *auditmemory.InMemoryStore
	service  *Service
	userID   id.UserID
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = memory.NewInMemoryStore()
	s.auditLog = auditmemory.NewInMemoryStore()
	s.service = NewService(s.store, WithAuditPublisher(publisher.NewPublisher(s.auditLog)))
	s.userID = id.UserID(uuid.New())
}

func ptr(v string) *string { return &v }

func (s *ServiceSuite) TestGetUnknownUserIsNotFound() {
	_, err := s.service.Get(s.T().Context(), s.userID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestUpdateCreatesOnFirstWrite() {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(s.T().Context(), now)

	profile, err := s.service.Update(ctx, s.userID, models.Update{
		FirstName: ptr("Mei"),
		LastName:  ptr("Tan"),
		Phone:     ptr("+65 8123 4567"),
	})
	s.Require().NoError(err)
	s.Equal("Mei", profile.FirstName)
	s.True(profile.UpdatedAt.Equal(now))

	loaded, err := s.service.Get(ctx, s.userID)
	s.Require().NoError(err)
	s.Equal("Tan", loaded.LastName)
}

func (s *ServiceSuite) TestUpdateIsPartial() {
	ctx := s.T().Context()
	_, err := s.service.Update(ctx, s.userID, models.Update{
		FirstName: ptr("Mei"),
		LastName:  ptr("Tan"),
	})
	s.Require().NoError(err)

	profile, err := s.service.Update(ctx, s.userID, models.Update{Phone: ptr("+65 8000 0000")})
	s.Require().NoError(err)
	s.Equal("Mei", profile.FirstName)
	s.Equal("+65 8000 0000", profile.Phone)
}

func (s *ServiceSuite) TestBlankFieldIsRejected() {
	_, err := s.service.Update(s.T().Context(), s.userID, models.Update{FirstName: ptr("  ")})
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *ServiceSuite) TestUpdateEmitsAuditEvent() {
	_, err := s.service.Update(s.T().Context(), s.userID, models.Update{FirstName: ptr("Mei")})
	s.Require().NoError(err)

	events, err := s.auditLog.ListByUser(s.T().Context(), s.userID)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(string(audit.EventProfileUpdated), events[0].Action)
	s.Equal(audit.CategoryCompliance, events[0].Category)
}
