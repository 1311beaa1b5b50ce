package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"product_viewer/pkg/errcodes"
	"product_viewer/pkg/httpx/reply"
)

const imageMaxAge = 3600

type imageLoader interface {
	Execute(ctx context.Context, u *url.URL) ([]byte, error)
}

// ImagesServer proxies deal images through the image cache. A failed load
// is answered with 404 so the renderer keeps its placeholder; it never
// affects any screen state.
type ImagesServer struct {
	loadImage imageLoader
}

func NewImagesServer(loadImage imageLoader) ImagesServer {
	return ImagesServer{
		loadImage: loadImage,
	}
}

func (s ImagesServer) getV1Image(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	u, err := url.Parse(r.URL.Query().Get("url"))
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return failure.NewInvalidArgumentError(
			"url query parameter must be an absolute http(s) url",
			failure.WithCode(errcodes.InvalidImageURL),
		)
	}

	data, err := s.loadImage.Execute(ctx, u)
	if err != nil {
		return failure.NewNotFoundError(
			fmt.Errorf("loadImage.Execute: %w", err).Error(),
			failure.WithCode(errcodes.ImageUnavailable),
		)
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return failure.NewNotFoundError(
			"payload is "+contentType+", not an image",
			failure.WithCode(errcodes.ImageUnavailable),
		)
	}

	reply.Blob(ctx, w, contentType, imageMaxAge, data)

	return nil
}
