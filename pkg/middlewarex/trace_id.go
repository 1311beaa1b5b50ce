package middlewarex

import (
	"log/slog"
	"net/http"

	"github.com/rs/xid"

	"product_viewer/pkg/contextx"
	"product_viewer/pkg/logx"
)

const headerNameTraceID = "X-Trace-Id"

// TraceID tags the request with the X-Trace-Id header value, or a fresh xid,
// and binds a logger carrying it to the request context.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(headerNameTraceID)

		if traceID == "" {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))
		ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldTraceID, traceID)))

		w.Header().Set(headerNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
