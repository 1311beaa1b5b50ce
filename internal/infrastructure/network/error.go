package network

import (
	"fmt"
	"strconv"
)

// ErrorKind enumerates every failure the transport client can report.
type ErrorKind int

const (
	KindInvalidURL ErrorKind = iota + 1
	KindNoData
	KindDecoding
	KindServer
	KindNetwork
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid-url"
	case KindNoData:
		return "no-data"
	case KindDecoding:
		return "decoding-error"
	case KindServer:
		return "server-error"
	case KindNetwork:
		return "network-error"
	default:
		return "invalid"
	}
}

// Error is the closed transport error set. StatusCode is set for KindServer,
// Detail for KindInvalidURL, KindDecoding and KindNetwork.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Detail     string
}

func NewInvalidURLError(detail string) *Error {
	return &Error{Kind: KindInvalidURL, Detail: detail}
}

func NewNoDataError() *Error {
	return &Error{Kind: KindNoData}
}

func NewDecodingError(detail string) *Error {
	return &Error{Kind: KindDecoding, Detail: detail}
}

func NewServerError(statusCode int) *Error {
	return &Error{Kind: KindServer, StatusCode: statusCode}
}

func NewNetworkError(detail string) *Error {
	return &Error{Kind: KindNetwork, Detail: detail}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNoData:
		return e.Kind.String()
	case KindServer:
		return e.Kind.String() + ": status " + strconv.Itoa(e.StatusCode)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
}
