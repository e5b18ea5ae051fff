package advisory

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-manager/internal/platform/logger"
	"pet-care-manager/internal/ports/ai"
)

type generatorStub struct {
	configured bool
	text       string
	err        error

	calls []ai.Request
}

func (s *generatorStub) IsConfigured() bool { return s.configured }

func (s *generatorStub) GenerateText(_ context.Context, req ai.Request) (string, error) {
	s.calls = append(s.calls, req)
	return s.text, s.err
}

func TestGetAdvice_MissingCredential_NoCall(t *testing.T) {
	gen := &generatorStub{configured: false, text: "should not be used"}
	g := New(gen, logger.Nop(), Options{})

	got := g.GetAdvice(context.Background(), "Mein Hund hustet", "Bello (Hund, 3 Jahre)")

	assert.Equal(t, MessageMissingCredential, got)
	assert.Empty(t, gen.calls)
}

func TestGetAdvice_NilGenerator(t *testing.T) {
	g := New(nil, nil, Options{})
	assert.Equal(t, MessageMissingCredential, g.GetAdvice(context.Background(), "x", ""))
}

func TestGetAdvice_Success_SingleCallWithContext(t *testing.T) {
	gen := &generatorStub{configured: true, text: "Bitte beobachte den Husten und geh bei Fieber zum Tierarzt."}
	g := New(gen, logger.Nop(), Options{})

	got := g.GetAdvice(context.Background(), "Mein Hund hustet", "Bello (Hund, 3 Jahre)")

	assert.Equal(t, gen.text, got)
	require.Len(t, gen.calls, 1)

	req := gen.calls[0]
	assert.Equal(t, DefaultModel, req.Model)
	assert.Equal(t, SystemInstruction, req.SystemInstruction)
	assert.Contains(t, req.Prompt, "Kontext (Haustiere des Nutzers): Bello (Hund, 3 Jahre)")
	assert.Contains(t, req.Prompt, "Frage des Nutzers: Mein Hund hustet")
}

func TestGetAdvice_EmptySummaryUsesDefaultContext(t *testing.T) {
	gen := &generatorStub{configured: true, text: "ok"}
	g := New(gen, logger.Nop(), Options{Model: "gemini-2.0-flash"})

	g.GetAdvice(context.Background(), "", "")

	require.Len(t, gen.calls, 1)
	assert.Equal(t, "gemini-2.0-flash", gen.calls[0].Model)
	assert.Contains(t, gen.calls[0].Prompt, NoPetsSelected)
}

func TestGetAdvice_EmptyText(t *testing.T) {
	gen := &generatorStub{configured: true, text: ""}
	g := New(gen, logger.Nop(), Options{})

	assert.Equal(t, MessageEmptyResponse, g.GetAdvice(context.Background(), "Frisst meine Katze genug?", ""))
	assert.Len(t, gen.calls, 1)
}

func TestGetAdvice_WhitespaceTextIsReturnedVerbatim(t *testing.T) {
	gen := &generatorStub{configured: true, text: "  \n"}
	g := New(gen, logger.Nop(), Options{})

	assert.Equal(t, "  \n", g.GetAdvice(context.Background(), "Frisst meine Katze genug?", ""))
}

func TestBuildPrompt_OnlyEmptySummaryIsReplaced(t *testing.T) {
	assert.Contains(t, BuildPrompt("Frage", ""), NoPetsSelected)
	assert.NotContains(t, BuildPrompt("Frage", " "), NoPetsSelected)
}

func TestGetAdvice_TransportFailure_LogsAndReturnsMessage(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Output: &buf})

	gen := &generatorStub{configured: true, err: errors.New("dial tcp: connection refused")}
	g := New(gen, log, Options{})

	got := g.GetAdvice(context.Background(), "Mein Hund hustet", "")

	assert.Equal(t, MessageConnectionError, got)
	assert.Len(t, gen.calls, 1)
	assert.True(t, strings.Contains(buf.String(), "level=error"))
	assert.True(t, strings.Contains(buf.String(), "connection refused"))
}

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt("Wie oft füttern?", "Minka (Katze, 5 Jahre)")
	assert.Equal(t, "Kontext (Haustiere des Nutzers): Minka (Katze, 5 Jahre)\n\nFrage des Nutzers: Wie oft füttern?", got)
}

func TestSummarizePets(t *testing.T) {
	assert.Equal(t, "", SummarizePets(nil))
	assert.Equal(t, "Bello (Hund, 3 Jahre)", SummarizePets([]PetContext{{Name: "Bello", Type: "Hund", Age: 3}}))
	assert.Equal(t,
		"Bello (Hund, 3 Jahre), Minka (Katze, 5 Jahre)",
		SummarizePets([]PetContext{{Name: "Bello", Type: "Hund", Age: 3}, {Name: "Minka", Type: "Katze", Age: 5}}),
	)
}
