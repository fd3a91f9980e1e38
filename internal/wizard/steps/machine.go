// Package steps holds the step-sequencing state machine. Two independent
// instances exist: the top-level wizard and the detail tabs nested inside
// the application-details step.
package steps

import (
	"certflow/internal/wizard/models"
)

// Machine tracks a position in a fixed ordered list of named steps. It only
// moves; deciding whether a move is allowed belongs to the caller.
type Machine struct {
	names []string
	index int
}

// NewWizard returns a machine over the four top-level wizard steps.
func NewWizard() *Machine {
	return &Machine{names: models.WizardSteps}
}

// NewDetailTabs returns a machine over the four application-details tabs.
func NewDetailTabs() *Machine {
	return &Machine{names: models.DetailTabs}
}

// At returns a machine positioned at the given index, clamped into range.
func At(m *Machine, index int) *Machine {
	m.Jump(index)
	return m
}

// Index returns the current position.
func (m *Machine) Index() int { return m.index }

// Name returns the name of the current step.
func (m *Machine) Name() string { return m.names[m.index] }

// Len returns the number of steps.
func (m *Machine) Len() int { return len(m.names) }

// IsLast reports whether the machine is on the final step.
func (m *Machine) IsLast() bool { return m.index == len(m.names)-1 }

// Next advances one step. On the final step it stays put; the caller is
// expected to treat Next on the last step as a submission trigger instead.
func (m *Machine) Next() {
	if m.index < len(m.names)-1 {
		m.index++
	}
}

// Back moves one step backwards, stopping at the first step.
func (m *Machine) Back() {
	if m.index > 0 {
		m.index--
	}
}

// Jump moves directly to the given index, clamped into range. Lateral jumps
// carry no validation gate.
func (m *Machine) Jump(index int) {
	switch {
	case index < 0:
		m.index = 0
	case index >= len(m.names):
		m.index = len(m.names) - 1
	default:
		m.index = index
	}
}
