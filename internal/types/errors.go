package types

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrGeneration      = errors.New("failed to generate itinerary")
	ErrSessionNotFound = errors.New("session not found")
	ErrBusy            = errors.New("request already in flight")
	ErrNoPlan          = errors.New("no active trip plan")
	ErrStaleResult     = errors.New("result belongs to a plan that was reset")
)

// GenerationFailedMessage is the only text users see when itinerary generation fails.
const GenerationFailedMessage = "Failed to generate itinerary. Please try again."

// Response is the generic envelope used by error and status replies.
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
