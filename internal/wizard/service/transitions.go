package service

import (
	"context"

	"certflow/internal/wizard/models"
	"certflow/internal/wizard/rules"
	"certflow/internal/wizard/steps"
	"certflow/pkg/platform/audit"
	"certflow/pkg/requestcontext"
)

// Next attempts the forward transition. The current step's gate runs first;
// a failing gate blocks the move and carries the notification in the
// Decision. On the review step a passing Next submits the application
// instead of advancing.
func (s *Service) Next(ctx context.Context) (*Result, error) {
	session, err := s.Session(ctx)
	if err != nil {
		return nil, err
	}

	decision := s.gateFor(ctx, session)
	if !decision.OK {
		if s.metrics != nil {
			s.metrics.GateFailures.WithLabelValues(session.StepName()).Inc()
		}
		s.emitAudit(ctx, audit.Event{
			UserID:   session.UserID,
			Action:   string(audit.EventGateFailed),
			Subject:  session.StepName(),
			Decision: "blocked",
			Reason:   decision.Reason,
		})
		return &Result{Session: session, Decision: decision}, nil
	}

	machine := steps.At(steps.NewWizard(), session.StepIndex)
	if machine.IsLast() {
		return s.submit(ctx, session)
	}

	machine.Next()
	session.StepIndex = machine.Index()
	session.UpdatedAt = requestcontext.Now(ctx)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	s.savePreference(ctx, session.UserID, prefLastVisitedStep(session.StepIndex))
	s.emitAudit(ctx, audit.Event{
		UserID:   session.UserID,
		Action:   string(audit.EventStepAdvanced),
		Subject:  session.StepName(),
		Decision: "allowed",
	})
	return &Result{Session: session, Decision: decision}, nil
}

// Back moves one step backwards. No gate applies.
func (s *Service) Back(ctx context.Context) (*Result, error) {
	session, err := s.Session(ctx)
	if err != nil {
		return nil, err
	}

	machine := steps.At(steps.NewWizard(), session.StepIndex)
	machine.Back()
	if machine.Index() != session.StepIndex {
		session.StepIndex = machine.Index()
		session.UpdatedAt = requestcontext.Now(ctx)
		if err := s.sessions.Save(ctx, session); err != nil {
			return nil, err
		}
		s.savePreference(ctx, session.UserID, prefLastVisitedStep(session.StepIndex))
	}
	return &Result{Session: session, Decision: rules.Decision{OK: true}}, nil
}

// JumpStep moves directly to a wizard step. Lateral jumps carry no gate.
func (s *Service) JumpStep(ctx context.Context, index int) (*Result, error) {
	session, err := s.Session(ctx)
	if err != nil {
		return nil, err
	}

	machine := steps.At(steps.NewWizard(), session.StepIndex)
	machine.Jump(index)
	if machine.Index() != session.StepIndex {
		session.StepIndex = machine.Index()
		session.UpdatedAt = requestcontext.Now(ctx)
		if err := s.sessions.Save(ctx, session); err != nil {
			return nil, err
		}
		s.savePreference(ctx, session.UserID, prefLastVisitedStep(session.StepIndex))
	}
	return &Result{Session: session, Decision: rules.Decision{OK: true}}, nil
}

// JumpTab moves between the application-details tabs. Tabs never gate and
// are not echoed to preferences.
func (s *Service) JumpTab(ctx context.Context, index int) (*Result, error) {
	session, err := s.Session(ctx)
	if err != nil {
		return nil, err
	}

	machine := steps.At(steps.NewDetailTabs(), session.TabIndex)
	machine.Jump(index)
	if machine.Index() != session.TabIndex {
		session.TabIndex = machine.Index()
		session.UpdatedAt = requestcontext.Now(ctx)
		if err := s.sessions.Save(ctx, session); err != nil {
			return nil, err
		}
	}
	return &Result{Session: session, Decision: rules.Decision{OK: true}}, nil
}

// gateFor runs the blocking check for the session's current step. The
// review step has no gate of its own; Next there submits.
func (s *Service) gateFor(ctx context.Context, session *models.Session) rules.Decision {
	switch session.StepName() {
	case models.StepPersonalInfo:
		return rules.CheckPersonalInfo(session.Form)
	case models.StepCertificationLevel:
		return rules.CheckCertificationLevel(session.Form)
	case models.StepApplicationDetails:
		return rules.CheckApplicationDetails(requestcontext.Now(ctx), session.Form)
	default:
		return rules.Decision{OK: true}
	}
}
