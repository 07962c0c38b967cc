package services

import (
	"errors"
	"strings"
)

// Kind classifies a service failure. Transports map kinds to responses.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindInvalidProvider
	KindPastDate
	KindSlotUnavailable
	KindSelfBooking
	KindNotFound
	KindInvalidCredentials
	KindEmailTaken
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInvalidProvider:
		return "invalid_provider"
	case KindPastDate:
		return "past_date"
	case KindSlotUnavailable:
		return "slot_unavailable"
	case KindSelfBooking:
		return "self_booking"
	case KindNotFound:
		return "not_found"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindEmailTaken:
		return "email_taken"
	default:
		return "internal"
	}
}

// Error is the single error type returned by services. Fields is set for
// validation failures and maps each offending field to a reason.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Kind == KindInternal {
		return e.Message + ": " + e.Err.Error()
	}
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for field, reason := range e.Fields {
		parts = append(parts, field+" "+reason)
	}
	return e.Message + " (" + strings.Join(parts, ", ") + ")"
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is regardless of message or fields.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrValidation         = &Error{Kind: KindValidation, Message: "Validation fails"}
	ErrInvalidProvider    = &Error{Kind: KindInvalidProvider, Message: "You can only create appointments with providers"}
	ErrPastDate           = &Error{Kind: KindPastDate, Message: "Past dates are not allowed"}
	ErrSlotUnavailable    = &Error{Kind: KindSlotUnavailable, Message: "Appointment date is not available"}
	ErrSelfBooking        = &Error{Kind: KindSelfBooking, Message: "You cannot book an appointment with yourself"}
	ErrNotFound           = &Error{Kind: KindNotFound, Message: "Resource not found"}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Message: "Invalid email or password"}
	ErrEmailTaken         = &Error{Kind: KindEmailTaken, Message: "User with this email already exists"}
)

// KindOf returns the kind carried by err, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func validationError(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: ErrValidation.Message, Fields: fields}
}

func internalError(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}
