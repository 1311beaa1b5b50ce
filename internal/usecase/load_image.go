package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/singleflight"

	"product_viewer/internal/domain"
	"product_viewer/pkg/contextx"
	"product_viewer/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// LoadImage returns image bytes, consulting the cache before the network.
// The cache is written only after a successful fetch whose payload passes
// the optional check. Concurrent misses for
// the same url share one fetch, which runs with the context of the caller
// that started it.
type LoadImage struct {
	repo  DealsRepository
	cache ImageCache
	check func(data []byte) error
	group *singleflight.Group
}

type LoadImageOption func(*LoadImage)

// WithPayloadCheck rejects fetched payloads before they reach the cache.
func WithPayloadCheck(check func(data []byte) error) LoadImageOption {
	return func(uc *LoadImage) {
		uc.check = check
	}
}

// NewLoadImage builds the use case. cache may be nil, in which case every call fetches.
func NewLoadImage(repo DealsRepository, cache ImageCache, opts ...LoadImageOption) LoadImage {
	uc := LoadImage{
		repo:  repo,
		cache: cache,
		group: &singleflight.Group{},
	}

	for _, opt := range opts {
		opt(&uc)
	}

	return uc
}

// CheckImage accepts payloads sniffed as image/*.
func CheckImage(data []byte) error {
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return domain.NewInvalidData(fmt.Errorf("payload is %s, not an image", contentType))
	}

	return nil
}

func (uc LoadImage) Execute(ctx context.Context, u *url.URL) ([]byte, error) {
	if u == nil {
		return uc.repo.FetchImageBytes(ctx, u) //nolint:wrapcheck // reported as invalid data by the repository
	}

	key := u.String()

	if uc.cache != nil {
		if data, ok := uc.cache.Get(key); ok {
			return data, nil
		}
	}

	v, err, shared := uc.group.Do(key, func() (any, error) {
		data, err := uc.repo.FetchImageBytes(ctx, u)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		if uc.check != nil {
			if err := uc.check(data); err != nil {
				return nil, err
			}
		}

		if uc.cache != nil {
			uc.cache.Put(key, data)
		}

		return data, nil
	})
	if err != nil {
		logger(ctx).Debug("image load failed", slog.String(logx.FieldURL, key), logx.Error(err))

		return nil, err //nolint:wrapcheck
	}

	if shared {
		logger(ctx).Debug("image fetch shared", slog.String(logx.FieldURL, key))
	}

	return v.([]byte), nil //nolint:forcetypeassert
}
