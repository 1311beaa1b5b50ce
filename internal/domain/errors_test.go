package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"product_viewer/internal/domain"
	"product_viewer/pkg/errcodes"
)

func TestErrorIs(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("repository.FetchDeals: %w", domain.NewNetworkUnavailable(cause))

	rq.ErrorIs(err, domain.ErrNetworkUnavailable)
	rq.NotErrorIs(err, domain.ErrNotFound)
	rq.ErrorIs(err, cause)

	rq.ErrorIs(domain.NewUnknown("boom", nil), domain.ErrUnknown)
}

func TestErrorDescription(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		err         *domain.Error
		description string
		code        string
	}{
		{
			name:        "Not found",
			err:         domain.NewNotFound(nil),
			description: "The requested item could not be found.",
			code:        errcodes.DealNotFound.String(),
		},
		{
			name:        "Network unavailable",
			err:         domain.NewNetworkUnavailable(nil),
			description: "No internet connection. Please check your network settings.",
			code:        errcodes.NetworkUnavailable.String(),
		},
		{
			name:        "Invalid data",
			err:         domain.NewInvalidData(nil),
			description: "The data received was invalid.",
			code:        errcodes.InvalidData.String(),
		},
		{
			name:        "Unknown with message",
			err:         domain.NewUnknown("server error: status 500", nil),
			description: "server error: status 500",
			code:        errcodes.Unknown.String(),
		},
		{
			name:        "Unknown without message",
			err:         domain.NewUnknown("", nil),
			description: "An unknown error occurred.",
			code:        errcodes.Unknown.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.description, tc.err.Description())
			rq.Equal(tc.description, tc.err.Error())
			rq.Equal(tc.code, tc.err.Code().String())
		})
	}
}

func TestAsError(t *testing.T) {
	rq := require.New(t)

	domainErr, ok := domain.AsError(fmt.Errorf("wrapped: %w", domain.NewInvalidData(nil)))
	rq.True(ok)
	rq.Equal(domain.KindInvalidData, domainErr.Kind)

	_, ok = domain.AsError(errors.New("plain"))
	rq.False(ok)
}
