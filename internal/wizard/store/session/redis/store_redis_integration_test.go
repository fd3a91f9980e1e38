//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	platredis "certflow/internal/platform/redis"
	"certflow/internal/wizard/models"
	id "certflow/pkg/domain"
	dErrors "certflow/pkg/domain-errors"
	"certflow/pkg/testutil/containers"
)

type SessionStoreSuite struct {
	suite.Suite
	store *RedisStore
}

func TestSessionStoreSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreSuite))
}

func (s *SessionStoreSuite) SetupSuite() {
	rc := containers.GetManager().GetRedis(s.T())
	s.store = NewRedisStore(&platredis.Client{Client: rc.Client})
}

func (s *SessionStoreSuite) SetupTest() {
	rc := containers.GetManager().GetRedis(s.T())
	s.Require().NoError(rc.FlushAll(context.Background()))
}

func (s *SessionStoreSuite) TestGetMissingSessionIsNotFound() {
	_, err := s.store.Get(context.Background(), id.UserID(uuid.New()))
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *SessionStoreSuite) TestSaveAndGetRoundTrip() {
	now := time.Now().UTC().Truncate(time.Second)
	session := models.NewSession(id.UserID(uuid.New()), now)
	session.Form.FirstName = "Mei"
	session.Form.CertificationLevel = id.LevelAdvanced2
	session.Form.AddProgram("prog-1")
	session.StepIndex = 2
	session.TabIndex = 1

	s.Require().NoError(s.store.Save(context.Background(), session))

	loaded, err := s.store.Get(context.Background(), session.UserID)
	s.Require().NoError(err)
	s.Equal(session.Form, loaded.Form)
	s.Equal(2, loaded.StepIndex)
	s.Equal(1, loaded.TabIndex)
	s.True(loaded.CreatedAt.Equal(session.CreatedAt))
}

func (s *SessionStoreSuite) TestDeleteRemovesSession() {
	session := models.NewSession(id.UserID(uuid.New()), time.Now())
	s.Require().NoError(s.store.Save(context.Background(), session))
	s.Require().NoError(s.store.Delete(context.Background(), session.UserID))

	_, err := s.store.Get(context.Background(), session.UserID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
