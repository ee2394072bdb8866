package http

import (
	"crypto/subtle"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/holiday-planner/internal/logger"
)

// basicAuth is an HTTP middleware that enforces HTTP basic authentication
// against the credentials from the server configuration.
//
// Authentication is disabled entirely while Server.AuthPasswordHash is empty:
// the middleware then passes every request straight through. When a hash is
// configured, the middleware rejects requests with HTTP 401 Unauthorized in
// the following cases:
//   - The request carries no basic-auth credentials ([ErrMissingCredentials]).
//   - The user name does not match Server.AuthUser, or the password does not
//     match the bcrypt hash in Server.AuthPasswordHash
//     ([ErrInvalidCredentials]).
//
// Rejection events are logged using the context-scoped logger obtained via
// [logger.FromRequest].
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.authCfg.AuthPasswordHash == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		user, password, ok := r.BasicAuth()
		if !ok {
			log.Err(ErrMissingCredentials).Send()
			unauthorized(w, ErrMissingCredentials.Error())
			return
		}

		userMatches := subtle.ConstantTimeCompare([]byte(user), []byte(h.authCfg.AuthUser)) == 1
		passwordErr := bcrypt.CompareHashAndPassword([]byte(h.authCfg.AuthPasswordHash), []byte(password))
		if !userMatches || passwordErr != nil {
			log.Err(ErrInvalidCredentials).Str("user", user).Send()
			unauthorized(w, ErrInvalidCredentials.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Basic realm="holiday-planner"`)
	http.Error(w, message, http.StatusUnauthorized)
}
