package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/luispedrilho/genutra-backend/internal/auth"
	"github.com/luispedrilho/genutra-backend/pkg/clientip"
)

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// RequireAuth validates the Authorization bearer token and stores the
// verified claims on the request context. A missing credential and an
// invalid one both return 401 but are logged differently.
func RequireAuth(codec *auth.TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				log.Printf("[auth] missing credential: %s %s from %s", r.Method, r.URL.Path, clientip.RealClientIP(r))
				unauthorized(w, "token de autenticação ausente")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if token == header || token == "" {
				log.Printf("[auth] malformed Authorization header: %s %s", r.Method, r.URL.Path)
				unauthorized(w, "token inválido")
				return
			}

			claims, err := codec.Verify(token)
			if err != nil {
				log.Printf("[auth] invalid token: %s %s: %v", r.Method, r.URL.Path, err)
				unauthorized(w, "token inválido ou expirado")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}
