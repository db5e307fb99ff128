package middleware

import (
	"mime"
	"net/http"

	"github.com/rezkam/tasks/internal/infrastructure/http/response"
)

// RequireJSON rejects requests that carry a body with a non-JSON content
// type. Bodiless requests pass through untouched.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			response.Error(w, "UNSUPPORTED_MEDIA_TYPE", "request body must be application/json",
				http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	})
}
