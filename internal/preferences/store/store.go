// Package store defines persistence for wizard preferences.
package store

import (
	"context"

	"certflow/internal/preferences"
	id "certflow/pkg/domain"
)

// PreferenceStore persists one preference record per applicant.
//
// Get never fails the caller: implementations return an empty record when
// the stored blob is missing, unreadable or unreachable. Merge overlays the
// patch's set fields over the stored record.
type PreferenceStore interface {
	Get(ctx context.Context, userID id.UserID) preferences.Preferences
	Merge(ctx context.Context, userID id.UserID, patch preferences.Preferences) error
}
