package advisory

import (
	"context"
	"fmt"
	"strings"

	"pet-care-manager/internal/platform/logger"
	"pet-care-manager/internal/ports/ai"
)

const (
	DefaultModel = "gemini-2.5-flash"

	Greeting = "Hallo! Ich bin dein KI-Assistent für Tierpflege. Wie kann ich dir heute helfen?"

	MessageMissingCredential = "API Key fehlt. Bitte konfigurieren Sie den API Key."
	MessageEmptyResponse     = "Entschuldigung, ich konnte darauf keine Antwort generieren."
	MessageConnectionError   = "Es gab einen Fehler bei der Verbindung zum KI-Assistenten."

	NoPetsSelected = "Keine spezifischen Haustiere ausgewählt."

	SystemInstruction = "Du bist ein hilfsbereiter, freundlicher Tierarzt-Assistent für eine App namens 'Pet Care Manager'. " +
		"Antworte kurz, präzise und auf Deutsch. Gib allgemeine Ratschläge, weise aber bei ernsten Problemen immer darauf hin, " +
		"einen echten Tierarzt aufzusuchen."

	promptFormat = "Kontext (Haustiere des Nutzers): %s\n\nFrage des Nutzers: %s"
)

type Options struct {
	// Model vacío => DefaultModel.
	Model string
}

// Gateway no guarda estado entre llamadas: cada pregunta es un único request.
type Gateway struct {
	gen   ai.Generator
	log   logger.Logger
	model string
}

func New(gen ai.Generator, log logger.Logger, opts Options) *Gateway {
	if log == nil {
		log = logger.Nop()
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}
	return &Gateway{
		gen:   gen,
		log:   log.With(map[string]any{"component": "advisory"}),
		model: model,
	}
}

// GetAdvice nunca devuelve error: los fallos se traducen a un mensaje para el usuario.
func (g *Gateway) GetAdvice(ctx context.Context, question, petSummary string) string {
	if g.gen == nil || !g.gen.IsConfigured() {
		return MessageMissingCredential
	}

	text, err := g.gen.GenerateText(ctx, ai.Request{
		Model:             g.model,
		SystemInstruction: SystemInstruction,
		Prompt:            BuildPrompt(question, petSummary),
	})
	if err != nil {
		g.log.Error("advice generation failed", map[string]any{
			"model": g.model,
			"error": err,
		})
		return MessageConnectionError
	}

	if text == "" {
		g.log.Warn("advice generation returned empty text", map[string]any{"model": g.model})
		return MessageEmptyResponse
	}
	return text
}

func BuildPrompt(question, petSummary string) string {
	if petSummary == "" {
		petSummary = NoPetsSelected
	}
	return fmt.Sprintf(promptFormat, petSummary, question)
}

// PetContext es lo mínimo de una mascota que se manda como contexto.
type PetContext struct {
	Name string
	Type string
	Age  int
}

// SummarizePets arma "Bello (Hund, 3 Jahre), Minka (Katze, 5 Jahre)".
func SummarizePets(pets []PetContext) string {
	parts := make([]string, 0, len(pets))
	for _, p := range pets {
		parts = append(parts, fmt.Sprintf("%s (%s, %d Jahre)", p.Name, p.Type, p.Age))
	}
	return strings.Join(parts, ", ")
}
