package dto

// ==============================================
// COMMON RESPONSE DTOs
// ==============================================

// APIResponse is the envelope every backend payload carries. A 2xx
// response with Success=false is a logical failure regardless of the
// HTTP status.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK reports transport-level success of the payload itself.
func (r APIResponse) OK() bool { return r.Success }

// Msg returns the server-provided message, empty when absent.
func (r APIResponse) Msg() string { return r.Message }

// Envelope is satisfied by every response DTO via the embedded
// APIResponse; the repository normalization routine works against it.
type Envelope interface {
	OK() bool
	Msg() string
}
