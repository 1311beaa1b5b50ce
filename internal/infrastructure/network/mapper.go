package network

import (
	"errors"
	"net/http"

	"product_viewer/internal/domain"
)

// MapToDomain translates transport failures into the domain taxonomy.
//
// Server errors other than 404 have no dedicated domain kind and become
// unknown errors carrying the transport description.
func MapToDomain(err error) *domain.Error {
	if err == nil {
		return nil
	}

	if domainErr, ok := domain.AsError(err); ok {
		return domainErr
	}

	var transportErr *Error
	if !errors.As(err, &transportErr) {
		return domain.NewUnknown(err.Error(), err)
	}

	switch transportErr.Kind {
	case KindInvalidURL, KindDecoding:
		return domain.NewInvalidData(err)
	case KindNoData:
		return domain.NewNotFound(err)
	case KindServer:
		if transportErr.StatusCode == http.StatusNotFound {
			return domain.NewNotFound(err)
		}
	case KindNetwork:
		return domain.NewNetworkUnavailable(err)
	}

	return domain.NewUnknown(transportErr.Error(), err)
}
