package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/rs/xid"

	"product_viewer/pkg/contextx"
	"product_viewer/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//go:generate moq -rm -out sensitive_data_masker_mock.gen.go . sensitiveDataMasker:SensitiveDataMaskerMock
type sensitiveDataMasker interface {
	Mask([]byte) []byte
}

// LoggingRoundTripper implements http.RoundTripper interface and executes HTTP
// requests with logging. Response bodies are dumped only for textual content
// types, image payloads are logged as headers only.
type LoggingRoundTripper struct {
	next                http.RoundTripper
	sensitiveDataMasker sensitiveDataMasker
	logFieldMaxLen      int
}

// NewLoggingRoundTripper returns a new logging RoundTripper instance.
func NewLoggingRoundTripper(
	next http.RoundTripper,
	opts ...Option,
) LoggingRoundTripper {
	rt := LoggingRoundTripper{
		next:                next,
		sensitiveDataMasker: logx.NewNopSensitiveDataMasker(),
		logFieldMaxLen:      0,
	}

	for _, opt := range opts {
		opt(&rt)
	}

	return rt
}

// RoundTrip implements http.RoundTripper interface.
func (rt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	requestID := xid.New().String()

	reqBytes, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		logger(ctx).Error(
			"httputil.DumpRequestOut",
			slog.String(logx.FieldRequestID, requestID),
			logx.Error(err),
		)
	}

	logger(ctx).Info(
		logx.FieldHTTPRequest,
		slog.String(logx.FieldRequestID, requestID),
		slog.String(logx.FieldRequestBody, string(rt.sensitiveDataMasker.Mask(rt.truncate(reqBytes)))),
	)

	start := time.Now()

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		logger(ctx).Warn(
			"next.RoundTrip",
			slog.String(logx.FieldRequestID, requestID),
			slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
			logx.Error(err),
		)

		return nil, fmt.Errorf("next.RoundTrip %w", err)
	}

	respBytes, err := httputil.DumpResponse(resp, logx.IsTextualContentType(resp.Header.Get("Content-Type")))
	if err != nil {
		logger(ctx).Error(
			"httputil.DumpResponse",
			slog.String(logx.FieldRequestID, requestID),
			logx.Error(err),
		)
	}

	logger(ctx).Info(
		logx.FieldHTTPResponse,
		slog.String(logx.FieldRequestID, requestID),
		slog.Int(logx.FieldResponseStatus, resp.StatusCode),
		slog.String(logx.FieldResponseBody, string(rt.sensitiveDataMasker.Mask(rt.truncate(respBytes)))),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return resp, nil
}

func (rt LoggingRoundTripper) truncate(b []byte) []byte {
	if rt.logFieldMaxLen != 0 && len(b) > rt.logFieldMaxLen {
		return b[:rt.logFieldMaxLen]
	}

	return b
}
