package middlewarex

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"product_viewer/pkg/httpx/reply"
	"product_viewer/pkg/logx"
)

// Recovery turns a handler panic into an InternalServerError reply.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.Error(ctx, w, fmt.Errorf("panic: %v", rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
