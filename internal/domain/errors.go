package domain

import (
	"errors"

	"git.appkode.ru/pub/go/failure"

	"product_viewer/pkg/errcodes"
)

// ErrorKind enumerates the closed set of domain failures seen above the
// repository boundary.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindNetworkUnavailable
	KindInvalidData
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not-found"
	case KindNetworkUnavailable:
		return "network-unavailable"
	case KindInvalidData:
		return "invalid-data"
	case KindUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

const (
	descriptionNotFound           = "The requested item could not be found."
	descriptionNetworkUnavailable = "No internet connection. Please check your network settings."
	descriptionInvalidData        = "The data received was invalid."
	descriptionUnknown            = "An unknown error occurred."
)

// Sentinels for errors.Is. Matching is by kind only, so ErrUnknown matches
// every unknown error regardless of its message.
var (
	ErrNotFound           = &Error{Kind: KindNotFound}           //nolint:gochecknoglobals
	ErrNetworkUnavailable = &Error{Kind: KindNetworkUnavailable} //nolint:gochecknoglobals
	ErrInvalidData        = &Error{Kind: KindInvalidData}        //nolint:gochecknoglobals
	ErrUnknown            = &Error{Kind: KindUnknown}            //nolint:gochecknoglobals
)

// Error is a domain failure. Only the unknown kind carries a message.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func NewNotFound(cause error) *Error {
	return &Error{Kind: KindNotFound, cause: cause}
}

func NewNetworkUnavailable(cause error) *Error {
	return &Error{Kind: KindNetworkUnavailable, cause: cause}
}

func NewInvalidData(cause error) *Error {
	return &Error{Kind: KindInvalidData, cause: cause}
}

func NewUnknown(message string, cause error) *Error {
	return &Error{Kind: KindUnknown, Message: message, cause: cause}
}

// Error returns the user facing description.
func (e *Error) Error() string {
	return e.Description()
}

// Description mirrors what the list screen shows for a failed load.
func (e *Error) Description() string {
	switch e.Kind {
	case KindNotFound:
		return descriptionNotFound
	case KindNetworkUnavailable:
		return descriptionNetworkUnavailable
	case KindInvalidData:
		return descriptionInvalidData
	default:
		if e.Message == "" {
			return descriptionUnknown
		}

		return e.Message
	}
}

func (e *Error) Code() failure.ErrorCode {
	switch e.Kind {
	case KindNotFound:
		return errcodes.DealNotFound
	case KindNetworkUnavailable:
		return errcodes.NetworkUnavailable
	case KindInvalidData:
		return errcodes.InvalidData
	default:
		return errcodes.Unknown
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error) //nolint:errorlint
	if !ok {
		return false
	}

	return e.Kind == t.Kind
}

// AsError extracts a domain error from err.
func AsError(err error) (*Error, bool) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr, true
	}

	return nil, false
}
