package handlers

import (
	"log"
	"net/http"
)

// Ping reports store connectivity with a live round-trip.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.PingContext(r.Context()); err != nil {
		log.Printf("[ping] database unreachable: %v", err)
		writeError(w, http.StatusInternalServerError, "banco de dados indisponível")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"supabase": true,
	})
}
