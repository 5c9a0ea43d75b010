package ai

import (
	"encoding/json"
	"errors"
	"regexp"
)

var ErrInvalidResponse = errors.New("resposta da IA não pôde ser interpretada")

// Greedy: first "{" through last "}". Models often wrap the JSON in prose;
// a single top-level object is captured correctly, multiple objects are not.
var jsonSpan = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON scans raw model output for a brace-delimited span and parses
// it. No span, a parse failure, or a null/empty object all fail with
// ErrInvalidResponse; individual fields are not validated beyond that.
func ExtractJSON(raw string) (json.RawMessage, error) {
	span := jsonSpan.FindString(raw)
	if span == "" {
		return nil, ErrInvalidResponse
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		return nil, ErrInvalidResponse
	}
	if len(parsed) == 0 {
		return nil, ErrInvalidResponse
	}

	return json.RawMessage(span), nil
}
