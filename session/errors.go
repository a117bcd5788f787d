package session

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRole          = errors.New("invalid image role")
	ErrSuperseded           = errors.New("intake superseded by a newer upload")
	ErrGenerationInProgress = errors.New("generation already in progress")
	ErrStaleResult          = errors.New("result computed for a previous input pair")
	ErrSessionClosed        = errors.New("session closed")
	ErrSessionNotFound      = errors.New("session not found")
)

// User-facing messages shown by the presentation layer.
const (
	MsgMissingImages    = "Please upload both a user photo and an outfit photo."
	MsgGenerationFailed = "Failed to generate the try-on image. Please try again."
	MsgQuotaExceeded    = "Quota exceeded. Please try again later."
	MsgSelfIntake       = "Failed to load user image."
	MsgOutfitIntake     = "Failed to load outfit image."
)

// IntakeError reports an image that could not be decoded. The slot keeps its
// previous image.
type IntakeError struct {
	Role    Role
	Message string
	Err     error
}

func (e *IntakeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s intake: %s: %v", e.Role, e.Message, e.Err)
	}
	return fmt.Sprintf("%s intake: %s", e.Role, e.Message)
}

func (e *IntakeError) Unwrap() error { return e.Err }

// ValidationError means a precondition failed and nothing was attempted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// GenerationError is a failed attempt at the remote generation service.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error { return e.Err }

// FeedbackError wraps a feedback service failure. It only ever reaches logs.
type FeedbackError struct {
	Err error
}

func (e *FeedbackError) Error() string { return fmt.Sprintf("feedback: %v", e.Err) }

func (e *FeedbackError) Unwrap() error { return e.Err }
