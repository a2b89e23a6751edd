package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"userpost-service/internal/config"
)

// APIHeaders stamps the static contract headers onto every response, plus a
// method-dependent resource marker. The rate-limit values are announcements
// only; nothing enforces them.
func APIHeaders(api config.API) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Content-Type", "application/json; charset=utf-8")
			h.Set("X-API-Version", api.Version)
			h.Set("X-API-Author", api.Author)
			h.Set("X-API-Documentation", api.DocumentationURL)
			h.Set("X-Rate-Limit", api.RateLimit)
			h.Set("X-Rate-Limit-Remaining", api.RateLimitRemaining)
			h.Set("Cache-Control", "no-cache, private")

			switch r.Method {
			case http.MethodPost:
				h.Set("X-Resource-Created", "true")
			case http.MethodPut, http.MethodPatch:
				h.Set("X-Resource-Updated", "true")
			case http.MethodDelete:
				h.Set("X-Resource-Deleted", "true")
			}

			next.ServeHTTP(w, r)
		})
	}
}
