package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	// Deals.
	DealNotFound       failure.ErrorCode = "DealNotFound"
	NetworkUnavailable failure.ErrorCode = "NetworkUnavailable"
	InvalidData        failure.ErrorCode = "InvalidData"
	Unknown            failure.ErrorCode = "Unknown"

	// Renderer surface.
	InvalidDealID     failure.ErrorCode = "InvalidDealID"
	InvalidDealIndex  failure.ErrorCode = "InvalidDealIndex"
	InvalidImageURL   failure.ErrorCode = "InvalidImageURL"
	InvalidCartAction failure.ErrorCode = "InvalidCartAction"
	ScreenNotOpen     failure.ErrorCode = "ScreenNotOpen"
	ImageUnavailable  failure.ErrorCode = "ImageUnavailable"
)
