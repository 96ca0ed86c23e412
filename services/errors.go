package services

import "errors"

// ErrorKind classifies workflow failures. The HTTP layer maps each kind to a
// status code; nothing upstream inspects message text.
type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindValidation
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "unexpected"
	}
}

// WorkflowError is the error type returned by the entry and room-booking
// workflows. Message is safe to show to the caller; Err is the cause and is
// only ever logged.
type WorkflowError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *WorkflowError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}

func ValidationError(message string) error {
	return &WorkflowError{Kind: KindValidation, Message: message}
}

func NotFoundError(message string, cause error) error {
	return &WorkflowError{Kind: KindNotFound, Message: message, Err: cause}
}

func UnexpectedError(cause error) error {
	return &WorkflowError{Kind: KindUnexpected, Message: MsgUnexpected, Err: cause}
}

// KindOf reports the kind of err. Anything that is not a *WorkflowError is
// unexpected.
func KindOf(err error) ErrorKind {
	var we *WorkflowError
	if errors.As(err, &we) {
		return we.Kind
	}
	return KindUnexpected
}

// PublicMessage returns the text that may be sent to the caller for err.
func PublicMessage(err error) string {
	var we *WorkflowError
	if errors.As(err, &we) && we.Kind != KindUnexpected {
		return we.Message
	}
	return MsgUnexpected
}
