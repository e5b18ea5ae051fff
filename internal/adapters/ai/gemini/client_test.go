package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-manager/internal/platform/httpclient"
	"pet-care-manager/internal/ports/ai"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"})
	require.NoError(t, err)
	return c
}

func TestGenerateText_SendsRequestAndReadsText(t *testing.T) {
	var got generateRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get(DefaultAPIKeyHeader))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Viel "},{"text":"Wasser."}]}}]}`))
	})

	text, err := c.GenerateText(context.Background(), ai.Request{
		Model:             "models/gemini-2.5-flash",
		SystemInstruction: "Du bist ein Tierarzt-Assistent.",
		Prompt:            "Mein Hund hustet",
	})
	require.NoError(t, err)
	assert.Equal(t, "Viel Wasser.", text)

	require.Len(t, got.Contents, 1)
	assert.Equal(t, "user", got.Contents[0].Role)
	assert.Equal(t, "Mein Hund hustet", got.Contents[0].Parts[0].Text)
	require.NotNil(t, got.SystemInstruction)
	assert.Equal(t, "Du bist ein Tierarzt-Assistent.", got.SystemInstruction.Parts[0].Text)
}

func TestGenerateText_SchemaMismatchIsEmptyText(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"candidates":[]}`,
		`{"candidates":[{"finishReason":"SAFETY"}]}`,
		`{"candidates":[{"content":{"parts":[{"text":42}]}}]}`,
	}
	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			text, err := c.GenerateText(context.Background(), ai.Request{Model: "gemini-2.5-flash", Prompt: "x"})
			require.NoError(t, err)
			assert.Empty(t, text)
		})
	}
}

func TestGenerateText_UpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid"}}`))
	})

	_, err := c.GenerateText(context.Background(), ai.Request{Model: "gemini-2.5-flash", Prompt: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream))

	var httpErr *httpclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "API key not valid", httpErr.Message)
}

func TestGenerateText_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "k"})
	require.NoError(t, err)

	_, err = c.GenerateText(context.Background(), ai.Request{Model: "gemini-2.5-flash", Prompt: "x"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUpstream))
}

func TestIsConfigured(t *testing.T) {
	c, err := NewClient(Config{APIKey: "   "})
	require.NoError(t, err)
	assert.False(t, c.IsConfigured())

	_, err = c.GenerateText(context.Background(), ai.Request{Model: "gemini-2.5-flash"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	c, err = NewClient(Config{APIKey: "k"})
	require.NoError(t, err)
	assert.True(t, c.IsConfigured())

	var nilClient *Client
	assert.False(t, nilClient.IsConfigured())
}
