package models

// FieldState is the outcome of one validation rule over the current form.
type FieldState struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ValidationState carries the per-field outcomes the review surfaces render.
// All four fields are recomputed together on every form write; none depends
// on another.
type ValidationState struct {
	Experience FieldState `json:"experience"`
	TSCs       FieldState `json:"tscs"`
	Timeline   FieldState `json:"timeline"`
	Industry   FieldState `json:"industry"`
}
