package chat

import (
	"errors"
	"fmt"
)

type Kind string

const (
	// KindValidation is a bad request from the caller.
	KindValidation Kind = "validation"
	// KindDependency means the service is not configured to reach the model.
	KindDependency Kind = "dependency"
	// KindUpstream covers every failure of the model API itself.
	KindUpstream Kind = "upstream"
)

const (
	msgEmptyMessage  = "Message is empty"
	msgMissingAPIKey = "API Key is missing. Please check your .env file."
)

// Error is returned by Service.Reply. Message is safe to show to the caller.
type Error struct {
	Kind     Kind
	Message  string
	CanRetry bool
	Err      error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	ErrEmptyMessage  = &Error{Kind: KindValidation, Message: msgEmptyMessage}
	ErrMissingAPIKey = &Error{Kind: KindDependency, Message: msgMissingAPIKey}
)

// KindOf reports the category of err, or "" when err is not a chat error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// upstreamError applies the retry ceiling to a failed model call. The server
// never retries on its own; CanRetry only tells the caller whether it is worth
// sending the message again with retry_count+1.
func upstreamError(retryCount int, err error) *Error {
	if retryCount < MaxRetries {
		return &Error{
			Kind:     KindUpstream,
			Message:  fmt.Sprintf("Connection failed: %v. (Attempt %d of %d)", err, retryCount+1, MaxRetries),
			CanRetry: true,
			Err:      err,
		}
	}
	return &Error{
		Kind:    KindUpstream,
		Message: fmt.Sprintf("Max retries exhausted. Technical details: %v", err),
		Err:     err,
	}
}
