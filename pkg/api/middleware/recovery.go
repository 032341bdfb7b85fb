package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/dd0wney/cluso-leiden/pkg/logging"
)

// PanicRecovery creates middleware that recovers from panics in HTTP
// handlers. The panic and stack trace are logged; the client gets a
// generic 500 without internal details.
func PanicRecovery(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic in HTTP handler",
						logging.String("method", r.Method),
						logging.Path(r.URL.Path),
						logging.Any("panic", err),
						logging.String("stack", string(debug.Stack())),
					)

					http.Error(w,
						"Internal server error",
						http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
