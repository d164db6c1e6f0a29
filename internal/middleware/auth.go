package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/syrineTissaoui/recalammation/internal/auth"
	"github.com/syrineTissaoui/recalammation/internal/utils"
)

// RequireAuth verifies the bearer credential and puts the resulting
// identity on the request context. The response body is the same
// "unauthorized" for every failure mode; the precise reason only goes to
// the log.
func RequireAuth(log zerolog.Logger, tokens auth.TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				utils.Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			id, err := tokens.Verify(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				log.Debug().Err(err).Str("path", r.URL.Path).Msg("credential rejected")
				utils.Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
		})
	}
}
