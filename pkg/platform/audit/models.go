// Package audit defines the audit event model and the Store contract.
// Events are emitted from domain logic, buffered by the publisher, persisted
// by a store, and (in production) relayed from the outbox table to Kafka.
package audit

import (
	"context"
	"time"

	id "certflow/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose. Categories
// drive retention policy and downstream routing.
type EventCategory string

const (
	// CategoryCompliance covers events with regulatory significance: a
	// submitted certification application is a legal record.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers events relevant to monitoring and forensics.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers routine activity useful for debugging.
	// These can be sampled and carry short retention.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	UserID    id.UserID
	Subject   string
	Action    string
	Decision  string
	Reason    string
	RequestID string
}

// AuditEvent names every action this service records.
type AuditEvent string

const (
	// Submission events
	EventApplicationSubmitted AuditEvent = "application_submitted"
	EventSubmissionRejected   AuditEvent = "submission_rejected"

	// Wizard events
	EventStepAdvanced             AuditEvent = "application_step_advanced"
	EventGateFailed               AuditEvent = "application_gate_failed"
	EventProgramSelected          AuditEvent = "program_selected"
	EventProgramSelectionRejected AuditEvent = "program_selection_rejected"

	// Profile events
	EventProfileUpdated AuditEvent = "profile_updated"

	// Preference events
	EventPreferenceSaved AuditEvent = "preference_saved"
)

// eventCategories maps each audit event to its category.
var eventCategories = map[AuditEvent]EventCategory{
	EventApplicationSubmitted: CategoryCompliance,
	EventProfileUpdated:       CategoryCompliance,

	EventSubmissionRejected:       CategorySecurity,
	EventProgramSelectionRejected: CategorySecurity,

	EventStepAdvanced:    CategoryOperations,
	EventGateFailed:      CategoryOperations,
	EventProgramSelected: CategoryOperations,
	EventPreferenceSaved: CategoryOperations,
}

// Category returns the category for the event, defaulting to operations for
// unknown actions so nothing is dropped.
func (e AuditEvent) Category() EventCategory {
	if c, ok := eventCategories[e]; ok {
		return c
	}
	return CategoryOperations
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByUser(ctx context.Context, userID id.UserID) ([]Event, error)
}

// Publisher is the emit-side contract services depend on.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}
