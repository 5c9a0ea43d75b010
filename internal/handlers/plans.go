package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/luispedrilho/genutra-backend/internal/ai"
	"github.com/luispedrilho/genutra-backend/internal/auth"
	"github.com/luispedrilho/genutra-backend/internal/models"
	"github.com/luispedrilho/genutra-backend/internal/store"
)

const (
	defaultRecentLimit  = 5
	defaultRecentOffset = 0
)

// anamnese fields the generator requires; everything else is opaque and
// stored verbatim.
type anamneseHeader struct {
	Nome     string `json:"nome"`
	Objetivo string `json:"objetivo"`
}

// GeneratePlan validates the anamnese, calls the text-generation service and
// persists the extracted payload. An unusable AI reply persists nothing. A
// store failure after a successful generation loses the content; the caller
// resubmits.
func (h *Handler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token de autenticação ausente")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	var header anamneseHeader
	if err := json.Unmarshal(body, &header); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	if header.Nome == "" || header.Objetivo == "" {
		writeError(w, http.StatusBadRequest, "anamnese incompleta: nome e objetivo são obrigatórios")
		return
	}

	payload, err := h.Generator.GeneratePlan(r.Context(), json.RawMessage(body))
	if err != nil {
		if errors.Is(err, ai.ErrInvalidResponse) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[gerar-plano] generation failed for user %s: %v", claims.ID, err)
		writeError(w, http.StatusBadRequest, "falha ao gerar o plano alimentar")
		return
	}

	plan := &models.Plan{
		UserID:   claims.ID,
		Nome:     header.Nome,
		Objetivo: header.Objetivo,
		Data:     time.Now().Format("2006-01-02"),
		Anamnese: json.RawMessage(body),
		Plano:    payload,
	}
	if err := h.Store.InsertPlan(r.Context(), plan); err != nil {
		log.Printf("[gerar-plano] insert failed for user %s: %v", claims.ID, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"plano": plan})
}

// ListPlans returns every plan owned by the token's user, newest date first.
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token de autenticação ausente")
		return
	}

	plans, err := h.Store.ListPlans(r.Context(), claims.ID)
	if err != nil {
		log.Printf("[planos] list failed for user %s: %v", claims.ID, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"planos": plans})
}

// GetPlan fetches one plan by id, scoped to the token's user.
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token de autenticação ausente")
		return
	}

	plan, err := h.Store.GetPlan(r.Context(), chi.URLParam(r, "id"), claims.ID)
	if err != nil {
		if errors.Is(err, store.ErrPlanNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("[plano] fetch failed for user %s: %v", claims.ID, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"plano": plan})
}

// RecentPlans returns a limit/offset page of plans plus the exact total.
func (h *Handler) RecentPlans(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "token de autenticação ausente")
		return
	}

	limit := defaultRecentLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	offset := defaultRecentOffset
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	plans, total, err := h.Store.ListRecentPlans(r.Context(), claims.ID, limit, offset)
	if err != nil {
		log.Printf("[planos/recentes] list failed for user %s: %v", claims.ID, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"planos": plans,
		"total":  total,
	})
}
