package network

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"product_viewer/pkg/contextx"
	"product_viewer/pkg/logx"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
	logger   = contextx.LoggerFromContextOrDefault                  //nolint:gochecknoglobals
)

//nolint:gochecknoglobals
var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "product_viewer",
	Subsystem: "transport",
	Name:      "request_duration_seconds",
	Help:      "Duration of deals service requests by operation and outcome.",
	Buckets:   prometheus.DefBuckets,
}, []string{"operation", "outcome"})

const (
	operationFetch      = "fetch"
	operationFetchBytes = "fetch_bytes"
	outcomeSuccess      = "success"
)

// Client issues requests against the deals service. It keeps no state
// between calls and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Fetch decodes the JSON body of endpoint into dest. Every returned error is a *Error.
func (c *Client) Fetch(ctx context.Context, endpoint Endpoint, dest any) (err error) {
	start := time.Now()

	defer func() { observe(operationFetch, start, err) }()

	u, err := endpoint.URL(c.baseURL)
	if err != nil {
		logger(ctx).Error("invalid url for endpoint", slog.String("endpoint", endpoint.String()), logx.Error(err))

		return err
	}

	body, statusCode, err := c.get(ctx, u)
	if err != nil {
		return err
	}

	logger(ctx).Debug("response received",
		slog.String(logx.FieldURL, u.String()),
		slog.Int(logx.FieldResponseStatus, statusCode),
	)

	if !isSuccess(statusCode) {
		logger(ctx).Warn("server error", slog.String(logx.FieldURL, u.String()), slog.Int(logx.FieldResponseStatus, statusCode))

		return NewServerError(statusCode)
	}

	if err = json.Unmarshal(body, dest); err != nil {
		logger(ctx).Warn("decoding error", slog.String(logx.FieldURL, u.String()), logx.Error(err))

		return NewDecodingError(err.Error())
	}

	if err = validate.StructCtx(ctx, dest); err != nil {
		var invalidValidation *validator.InvalidValidationError
		if !errors.As(err, &invalidValidation) {
			logger(ctx).Warn("validation error", slog.String(logx.FieldURL, u.String()), logx.Error(err))

			return NewDecodingError(err.Error())
		}
	}

	return nil
}

// FetchBytes returns the raw body behind u. An empty body is reported as no-data.
func (c *Client) FetchBytes(ctx context.Context, u *url.URL) (data []byte, err error) {
	start := time.Now()

	defer func() { observe(operationFetchBytes, start, err) }()

	if u == nil || !u.IsAbs() {
		return nil, NewInvalidURLError(fmt.Sprintf("not an absolute url: %v", u))
	}

	body, statusCode, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	if !isSuccess(statusCode) {
		return nil, NewServerError(statusCode)
	}

	if len(body) == 0 {
		return nil, NewNoDataError()
	}

	return body, nil
}

func (c *Client) get(ctx context.Context, u *url.URL) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, 0, NewInvalidURLError(err.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger(ctx).Warn("network error", slog.String(logx.FieldURL, u.String()), logx.Error(err))

		return nil, 0, NewNetworkError(err.Error())
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, NewNetworkError(fmt.Errorf("io.ReadAll: %w", err).Error())
	}

	return body, resp.StatusCode, nil
}

func isSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

func observe(operation string, start time.Time, err error) {
	outcome := outcomeSuccess

	var transportErr *Error
	if errors.As(err, &transportErr) {
		outcome = transportErr.Kind.String()
	}

	requestDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
}

// Fetcher is implemented by Client and by test doubles.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint Endpoint, dest any) error
}

// Fetch is the typed form of Fetcher.Fetch.
func Fetch[T any](ctx context.Context, f Fetcher, endpoint Endpoint) (T, error) {
	var dest T

	if err := f.Fetch(ctx, endpoint, &dest); err != nil {
		return dest, err
	}

	return dest, nil
}
