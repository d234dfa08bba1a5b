package middleware

import (
	"log/slog"
	"net/http"

	appctx "github.com/jsamuelsen11/stuti-api/internal/app/context"
	"github.com/jsamuelsen11/stuti-api/internal/platform/logging"
)

// AppContext gives every request its own appctx.RequestContext, which the
// service uses to memoize lookups and queue side effects. Actions still queued
// when the handler returns were never committed and are reported.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))

			if n := rc.Pending(); n > 0 {
				logging.FromContext(ctx).WarnContext(ctx, "request finished with uncommitted actions",
					slog.Int("pending", n))
			}
		})
	}
}
