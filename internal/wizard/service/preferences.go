package service

import (
	"context"
	"log/slog"

	"certflow/internal/preferences"
	id "certflow/pkg/domain"
	"certflow/pkg/platform/audit"
)

func prefIndustry(v id.Industry) preferences.Preferences {
	return preferences.Preferences{Industry: &v}
}

func prefCertificationLevel(v id.CertificationLevel) preferences.Preferences {
	return preferences.Preferences{CertificationLevel: &v}
}

func prefLastVisitedStep(v int) preferences.Preferences {
	return preferences.Preferences{LastVisitedStep: &v}
}

// savePreference writes a preference patch best-effort. A failed write is
// logged and counted, never surfaced: preferences must not block the
// wizard.
func (s *Service) savePreference(ctx context.Context, userID id.UserID, patch preferences.Preferences) {
	if err := s.prefs.Merge(ctx, userID, patch); err != nil {
		if s.metrics != nil {
			s.metrics.PreferenceSaveErrors.Inc()
		}
		s.logger.Warn("preference save failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return
	}
	s.emitAudit(ctx, audit.Event{
		UserID:   userID,
		Action:   string(audit.EventPreferenceSaved),
		Subject:  "preferences",
		Decision: "allowed",
	})
}
