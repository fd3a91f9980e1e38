package service

import (
	"context"

	"certflow/internal/eligibility"
	"certflow/internal/wizard/rules"
	id "certflow/pkg/domain"
	"certflow/pkg/platform/audit"
	"certflow/pkg/requestcontext"
)

// SelectProgram adds a program to the selection set, provided the
// applicant's certification level makes them eligible for it. A rejected
// selection leaves the set untouched.
func (s *Service) SelectProgram(ctx context.Context, programID id.ProgramID) (*Result, error) {
	session, err := s.Session(ctx)
	if err != nil {
		return nil, err
	}

	program, err := s.catalog.GetProgram(ctx, programID)
	if err != nil {
		return nil, err
	}

	status := eligibility.Evaluate(session.Form.CertificationLevel, program.RequiredLevel)
	if status != eligibility.StatusEligible {
		if s.metrics != nil {
			s.metrics.EligibilityRejections.Inc()
		}
		s.emitAudit(ctx, audit.Event{
			UserID:   session.UserID,
			Action:   string(audit.EventProgramSelectionRejected),
			Subject:  programID.String(),
			Decision: "blocked",
			Reason:   status.String(),
		})
		return &Result{Session: session, Decision: rules.Decision{
			Field:  "selectedPrograms",
			Reason: selectionReason(status, program.ProgramName),
		}}, nil
	}

	session.Form.AddProgram(programID)
	session.UpdatedAt = requestcontext.Now(ctx)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	s.emitAudit(ctx, audit.Event{
		UserID:   session.UserID,
		Action:   string(audit.EventProgramSelected),
		Subject:  programID.String(),
		Decision: "allowed",
	})
	return &Result{Session: session, Decision: rules.Decision{OK: true}}, nil
}

// DeselectProgram removes a program from the selection set. No eligibility
// check applies to removal.
func (s *Service) DeselectProgram(ctx context.Context, programID id.ProgramID) (*Result, error) {
	session, err := s.Session(ctx)
	if err != nil {
		return nil, err
	}

	if session.Form.HasProgram(programID) {
		session.Form.RemoveProgram(programID)
		session.UpdatedAt = requestcontext.Now(ctx)
		if err := s.sessions.Save(ctx, session); err != nil {
			return nil, err
		}
	}
	return &Result{Session: session, Decision: rules.Decision{OK: true}}, nil
}

func selectionReason(status eligibility.Status, programName string) string {
	switch status {
	case eligibility.StatusPending:
		return "Select a certification level before choosing programs."
	case eligibility.StatusError:
		return "Eligibility for " + programName + " could not be determined."
	default:
		return "Your certification level does not meet the requirement for " + programName + "."
	}
}
