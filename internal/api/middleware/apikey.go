package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/ndewijer/portfolio-draft-seeder/internal/api/response"
	"github.com/ndewijer/portfolio-draft-seeder/internal/timetoken"
)

// APIKeyMiddleware requires a matching X-API-Key header and a fresh X-Time-Token
// generated for that key. An empty apiKey means authentication was never configured
// and every request is refused with 500.
func APIKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				response.RespondError(w, http.StatusInternalServerError, "authentication error", "Authentication not loaded")
				return
			}

			key := r.Header.Get("X-API-Key")
			if key == "" {
				response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
				return
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
				return
			}

			token := r.Header.Get("X-Time-Token")
			if token == "" {
				response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing Time token")
				return
			}
			if err := timetoken.Verify(apiKey, token, timetoken.TTL); err != nil {
				response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Time token is invalid or expired")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
