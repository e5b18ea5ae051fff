package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"pet-care-manager/internal/platform/httpclient"
	"pet-care-manager/internal/ports/ai"
)

const (
	DefaultBaseURL      = "https://generativelanguage.googleapis.com/v1beta"
	DefaultAPIKeyHeader = "x-goog-api-key"
	DefaultTimeout      = 30 * time.Second
)

var (
	ErrNotConfigured = errors.New("gemini client not configured")
	ErrUpstream      = errors.New("gemini upstream error")
)

// Config del cliente Gemini.
type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío se usa "x-goog-api-key".
	APIKeyHeader string

	Timeout time.Duration

	// Transport opcional (tests).
	Transport http.RoundTripper
}

type Client struct {
	apiKey string
	http   *httpclient.Client
}

var _ ai.Generator = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	header := strings.TrimSpace(cfg.APIKeyHeader)
	if header == "" {
		header = DefaultAPIKeyHeader
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	apiKey := strings.TrimSpace(cfg.APIKey)

	headers := map[string]string{}
	if apiKey != "" {
		headers[header] = apiKey
	}

	hc, err := httpclient.New(httpclient.Options{
		BaseURL:   base,
		Timeout:   timeout,
		Transport: cfg.Transport,
		Headers:   headers,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &Client{apiKey: apiKey, http: hc}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

// GenerateText hace una llamada a models/{model}:generateContent.
// Una respuesta que no cumple el schema devuelve "" sin error.
func (c *Client) GenerateText(ctx context.Context, req ai.Request) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}
	model := normalizeModel(req.Model)
	if model == "" {
		return "", errors.New("gemini: model is required")
	}

	body := generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: req.Prompt}},
		}},
	}
	if strings.TrimSpace(req.SystemInstruction) != "" {
		body.SystemInstruction = &content{Parts: []part{{Text: req.SystemInstruction}}}
	}

	var raw json.RawMessage
	path := "/models/" + url.PathEscape(model) + ":generateContent"
	if err := c.http.DoJSON(ctx, http.MethodPost, path, body, &raw); err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			return "", fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		return "", fmt.Errorf("gemini: %w", err)
	}

	ok, err := matchesResponseSchema(raw)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if !ok {
		return "", nil
	}

	var resp generateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	return resp.text(), nil
}

func normalizeModel(model string) string {
	model = strings.TrimSpace(model)
	return strings.TrimPrefix(model, "models/")
}

const responseSchema = `{
  "type": "object",
  "required": ["candidates"],
  "properties": {
    "candidates": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["content"],
        "properties": {
          "content": {
            "type": "object",
            "required": ["parts"],
            "properties": {
              "parts": {
                "type": "array",
                "items": {
                  "type": "object",
                  "properties": {
                    "text": {"type": "string"}
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(responseSchema))
})

func matchesResponseSchema(raw []byte) (bool, error) {
	schema, err := compiledSchema()
	if err != nil {
		return false, fmt.Errorf("compile response schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return false, fmt.Errorf("validate response: %w", err)
	}
	return result.Valid(), nil
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// text concatena las partes de texto del primer candidato.
func (r generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
