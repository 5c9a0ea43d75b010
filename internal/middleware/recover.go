package middleware

import (
	"encoding/json"
	"log"
	"net/http"
)

// Recover catches panics at the handler boundary and returns a 500 with the
// standard error body, so no failure escapes unhandled.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[panic] %s %s: %v", r.Method, r.URL.Path, rec)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "erro interno do servidor"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
