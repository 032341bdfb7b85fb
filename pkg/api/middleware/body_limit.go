package middleware

import (
	"net/http"
)

// BodySizeLimit creates middleware that limits the size of incoming
// request bodies. The Content-Length header is checked first so large
// requests are rejected before the body is read; MaxBytesReader covers
// chunked transfers with no declared length.
func BodySizeLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

			next.ServeHTTP(w, r)
		})
	}
}
