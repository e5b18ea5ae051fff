package ai

import "context"

// Request es un único turno hacia el modelo: sin historial.
type Request struct {
	Model             string
	SystemInstruction string
	Prompt            string
}

// Generator genera texto a partir de un prompt.
// IsConfigured() == false significa que no hay credencial; no se debe llamar a GenerateText.
type Generator interface {
	IsConfigured() bool
	GenerateText(ctx context.Context, req Request) (string, error)
}
