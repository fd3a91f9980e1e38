// Package redis persists preference records as JSON blobs, one key per
// applicant.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"certflow/internal/preferences"
	platredis "certflow/internal/platform/redis"
	id "certflow/pkg/domain"
)

const keyPrefix = "preferences:"

type RedisStore struct {
	client *platredis.Client
	logger *slog.Logger
}

func NewRedisStore(client *platredis.Client, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func key(userID id.UserID) string {
	return keyPrefix + userID.String()
}

// Get loads the applicant's preference record. Missing keys, unreadable
// blobs and connection failures all come back as an empty record; the
// wizard must never stall on a preference read.
func (s *RedisStore) Get(ctx context.Context, userID id.UserID) preferences.Preferences {
	raw, err := s.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			s.logger.Warn("preference read failed, using empty record",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()))
		}
		return preferences.Preferences{}
	}

	var prefs preferences.Preferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		s.logger.Warn("preference blob unreadable, using empty record",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return preferences.Preferences{}
	}
	return prefs
}

// Merge overlays the patch's set fields onto the stored record and writes
// the result back. The record has no TTL; preferences survive until
// overwritten.
func (s *RedisStore) Merge(ctx context.Context, userID id.UserID, patch preferences.Preferences) error {
	current := s.Get(ctx, userID)
	current.Apply(patch)

	raw, err := json.Marshal(current)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key(userID), raw, 0).Err()
}
