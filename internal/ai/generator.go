package ai

import (
	"context"
	"encoding/json"
	"fmt"
)

const systemPersona = "Você é um nutricionista experiente que monta planos alimentares personalizados."

// Completer is the text-generation call the generator depends on. *Client
// satisfies it; tests substitute a fake.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Generator builds the plan prompt and extracts the structured payload from
// the model's reply.
type Generator struct {
	chat Completer
}

func NewGenerator(chat Completer) *Generator {
	return &Generator{chat: chat}
}

// GeneratePlan produces a plan payload from validated anamnesis data. The
// serialized anamnese is embedded in a Portuguese instruction that mandates a
// JSON-only reply. Any unusable reply fails with ErrInvalidResponse and the
// caller persists nothing.
func (g *Generator) GeneratePlan(ctx context.Context, anamnese json.RawMessage) (json.RawMessage, error) {
	prompt := fmt.Sprintf(`Com base na anamnese abaixo, monte um plano alimentar completo.

Anamnese:
%s

Responda APENAS com um JSON válido, sem texto antes ou depois, no formato:
{
  "resumo": "resumo do plano",
  "tabela": [
    {"refeicao": "nome da refeição", "horario": "HH:MM", "alimentos": "alimentos da refeição", "observacoes": "observações"}
  ],
  "recomendacoes": "recomendações gerais",
  "notas": "notas finais"
}
Os horários devem ser realistas, no formato HH:MM.`, string(anamnese))

	raw, err := g.chat.Complete(ctx, systemPersona, prompt)
	if err != nil {
		return nil, err
	}

	return ExtractJSON(raw)
}
