package types

// Envelope is the shape the admin dashboard reads: `{success?, message?, data?}`.
// Success is a pointer because several endpoints omit it entirely.
type Envelope struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorEnvelope is written for coded errors.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}
