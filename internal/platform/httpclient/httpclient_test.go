package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_SendsHeadersAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/echo", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["q"]})
	}))
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL + "/v1/", Headers: map[string]string{"x-goog-api-key": "secret"}})
	require.NoError(t, err)

	var out struct {
		Echo string `json:"echo"`
	}
	require.NoError(t, c.DoJSON(context.Background(), http.MethodPost, "echo", map[string]string{"q": "hallo"}, &out))
	assert.Equal(t, "hallo", out.Echo)
}

func TestDoJSON_RawMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"a":1}`))
	}))
	defer srv.Close()

	c, err := New(Options{})
	require.NoError(t, err)

	var raw json.RawMessage
	require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, srv.URL, nil, &raw))
	assert.JSONEq(t, `{"a":1}`, string(raw))
}

func TestDoJSON_Non2xx_ParsesProviderMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL})
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusTooManyRequests, httpErr.StatusCode)
	assert.Equal(t, "quota exceeded", httpErr.Message)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(Options{BaseURL: "::not a url"})
	assert.Error(t, err)
}

func TestDoJSON_RelativePathWithoutBaseURL(t *testing.T) {
	c, err := New(Options{})
	require.NoError(t, err)
	assert.Error(t, c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil))
}
