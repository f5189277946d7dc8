package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAPI(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerateTextReturnsFirstCandidate(t *testing.T) {
	var gotBody map[string]any
	srv := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Contains(t, r.URL.Path, "gemini-1.5-flash:generateContent")
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "hello"}}}},
			},
		})
	})

	client := NewClient("secret", WithBaseURL(srv.URL))
	text, err := client.GenerateText(context.Background(), "gemini-1.5-flash", "hi",
		GenerationConfig{Temperature: 0.7, TopP: 0.8, TopK: 40})
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	cfg, ok := gotBody["generationConfig"].(map[string]any)
	require.True(t, ok, "generationConfig missing from payload")
	assert.InDelta(t, 0.7, cfg["temperature"], 1e-9)
	assert.InDelta(t, 0.8, cfg["topP"], 1e-9)
	assert.EqualValues(t, 40, cfg["topK"])
}

func TestGenerateTextOmitsEmptyConfig(t *testing.T) {
	srv := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, present := body["generationConfig"]
		assert.False(t, present)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "ok"}}}},
			},
		})
	})

	client := NewClient("secret", WithBaseURL(srv.URL))
	_, err := client.GenerateText(context.Background(), "gemini-1.5-flash", "hi", GenerationConfig{})
	require.NoError(t, err)
}

func TestGenerateTextNon200(t *testing.T) {
	srv := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota"}`, http.StatusTooManyRequests)
	})

	client := NewClient("secret", WithBaseURL(srv.URL))
	_, err := client.GenerateText(context.Background(), "gemini-1.5-flash", "hi", GenerationConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-200")
}

func TestGenerateTextEmptyCandidates(t *testing.T) {
	srv := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	})

	client := NewClient("secret", WithBaseURL(srv.URL))
	_, err := client.GenerateText(context.Background(), "gemini-1.5-flash", "hi", GenerationConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}
