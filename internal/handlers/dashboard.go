package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/luispedrilho/genutra-backend/internal/auth"
	"github.com/luispedrilho/genutra-backend/internal/metrics"
)

// Dashboard loads the user's full plan list (no pagination, so aggregates
// are exact) and computes the summary entirely in memory.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token de autenticação ausente")
		return
	}

	plans, err := h.Store.ListPlans(r.Context(), claims.ID)
	if err != nil {
		log.Printf("[dashboard] list failed for user %s: %v", claims.ID, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, metrics.Aggregate(plans, time.Now()))
}
