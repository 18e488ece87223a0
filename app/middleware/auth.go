package middleware

import (
	"net/http"

	"blogcomments/app/auth"
	"blogcomments/app/response"

	"github.com/rs/zerolog"
)

// TokenValidator resolves a bearer token to a user id.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// Auth rejects requests without a valid bearer token and stores the token
// subject as the caller's user id.
func Auth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.GetBearerToken(r.Header)
			if err == nil {
				var userID string
				userID, err = tokens.ValidateToken(token)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
					return
				}
			}

			zerolog.Ctx(r.Context()).Debug().Err(err).Msg("rejected request")
			_ = response.Unauthorized(w)
		})
	}
}
