// Package redis persists wizard sessions as JSON blobs, one key per
// applicant.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	platredis "certflow/internal/platform/redis"
	"certflow/internal/wizard/models"
	id "certflow/pkg/domain"
	dErrors "certflow/pkg/domain-errors"
)

const keyPrefix = "wizard:session:"

// sessionTTL bounds how long an abandoned session lingers. Every save
// refreshes it.
const sessionTTL = 30 * 24 * time.Hour

type RedisStore struct {
	client *platredis.Client
}

func NewRedisStore(client *platredis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func key(userID id.UserID) string {
	return keyPrefix + userID.String()
}

func (s *RedisStore) Get(ctx context.Context, userID id.UserID) (*models.Session, error) {
	raw, err := s.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, dErrors.New(dErrors.CodeNotFound, "wizard session not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to load wizard session")
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to decode wizard session")
	}
	return &session, nil
}

func (s *RedisStore) Save(ctx context.Context, session *models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode wizard session")
	}
	if err := s.client.Set(ctx, key(session.UserID), raw, sessionTTL).Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to save wizard session")
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID id.UserID) error {
	if err := s.client.Del(ctx, key(userID)).Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to delete wizard session")
	}
	return nil
}
