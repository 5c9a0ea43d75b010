package models

import (
	"encoding/json"
	"time"
)

// Plan is a generated meal plan. Data is the calendar date (YYYY-MM-DD, no
// time component); Anamnese holds the intake form exactly as submitted and
// Plano holds the JSON payload extracted from the AI response.
type Plan struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Nome      string          `json:"nome"`
	Objetivo  string          `json:"objetivo"`
	Data      string          `json:"data"`
	Anamnese  json.RawMessage `json:"anamnese"`
	Plano     json.RawMessage `json:"plano"`
	CreatedAt time.Time       `json:"created_at"`
}
