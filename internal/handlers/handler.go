// Package handlers composes the gateways per endpoint. Every handler maps
// errors at its boundary to one JSON response with an "error" string; nothing
// is retried.
package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/luispedrilho/genutra-backend/internal/auth"
	"github.com/luispedrilho/genutra-backend/internal/identity"
	"github.com/luispedrilho/genutra-backend/internal/store"
)

// Generator produces a plan payload from an anamnese. Satisfied by
// *ai.Generator; tests substitute a fake.
type Generator interface {
	GeneratePlan(ctx context.Context, anamnese json.RawMessage) (json.RawMessage, error)
}

// Handler holds the process-wide dependencies, constructed once at startup
// and injected; there are no ambient singletons.
type Handler struct {
	DB        *sql.DB
	Store     *store.Store
	Identity  *identity.Provider
	Tokens    *auth.TokenCodec
	Generator Generator
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
