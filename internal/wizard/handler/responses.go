package handler

import (
	"certflow/internal/wizard/models"
	"certflow/internal/wizard/service"
)

type sessionResponse struct {
	Step       string                 `json:"step"`
	StepIndex  int                    `json:"stepIndex"`
	Tab        string                 `json:"tab"`
	TabIndex   int                    `json:"tabIndex"`
	Form       models.FormData        `json:"form"`
	Validation models.ValidationState `json:"validation"`
}

// notification is the single user-facing message a blocked operation
// produces.
type notification struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type resultResponse struct {
	sessionResponse
	Submitted    bool          `json:"submitted"`
	Notification *notification `json:"notification,omitempty"`
}

func sessionView(session *models.Session) sessionResponse {
	return sessionResponse{
		Step:       session.StepName(),
		StepIndex:  session.StepIndex,
		Tab:        session.TabName(),
		TabIndex:   session.TabIndex,
		Form:       session.Form,
		Validation: session.Validation,
	}
}

func resultView(result *service.Result) resultResponse {
	resp := resultResponse{
		sessionResponse: sessionView(result.Session),
		Submitted:       result.Submitted,
	}
	if !result.Decision.OK {
		resp.Notification = &notification{
			Field:   result.Decision.Field,
			Message: result.Decision.Reason,
		}
	}
	return resp
}
