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

	"shiksha/internal/config"
	"shiksha/internal/domain"
	"shiksha/internal/genai"
	"shiksha/internal/port"
)

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *Generator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGeneratorWithEndpoint(&config.GenAIProviderConfig{
		Provider:     "gemini",
		APIKey:       "test-key",
		DefaultModel: "gemini-2.0-flash",
	}, srv.URL)
}

func candidateResponse(texts ...string) map[string]interface{} {
	parts := make([]map[string]string, 0, len(texts))
	for _, t := range texts {
		parts = append(parts, map[string]string{"text": t})
	}
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{"parts": parts}, "finishReason": "STOP"},
		},
	}
}

func TestGenerate_SendsPromptAndConfig(t *testing.T) {
	var captured map[string]interface{}
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(candidateResponse("generated text"))
	})

	out, err := g.Generate(context.Background(), port.GenerateInput{
		Prompt:          "explain photosynthesis",
		Temperature:     0.2,
		MaxOutputTokens: 1024,
		ResponseFormat:  "application/json",
	})

	require.NoError(t, err)
	assert.Equal(t, "generated text", out.Text)
	assert.Equal(t, "gemini-2.0-flash", out.ModelUsed)
	assert.Equal(t, "explain photosynthesis", out.PromptUsed)

	contents := captured["contents"].([]interface{})
	require.Len(t, contents, 1)
	parts := contents[0].(map[string]interface{})["parts"].([]interface{})
	require.Len(t, parts, 1)
	assert.Equal(t, "explain photosynthesis", parts[0].(map[string]interface{})["text"])

	genCfg := captured["generationConfig"].(map[string]interface{})
	assert.Equal(t, 0.2, genCfg["temperature"])
	assert.Equal(t, float64(1024), genCfg["maxOutputTokens"])
	assert.Equal(t, "application/json", genCfg["responseMimeType"])

	safety := captured["safetySettings"].([]interface{})
	assert.Len(t, safety, 4)
}

func TestGenerate_JoinsMultipleParts(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(candidateResponse("first half, ", "second half"))
	})

	out, err := g.Generate(context.Background(), port.GenerateInput{Prompt: "p"})

	require.NoError(t, err)
	assert.Equal(t, "first half, second half", out.Text)
}

func TestGenerate_RateLimited(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := g.Generate(context.Background(), port.GenerateInput{Prompt: "p"})

	var rlErr *genai.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "gemini", rlErr.Provider)
	assert.Equal(t, float64(30), rlErr.RetryAfter.Seconds())
}

func TestGenerate_ServerError(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := g.Generate(context.Background(), port.GenerateInput{Prompt: "p"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGenerate_NoCandidates(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	})

	_, err := g.Generate(context.Background(), port.GenerateInput{Prompt: "p"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEmptyGeneration))
}

func TestGenerate_EmptyText(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(candidateResponse("", "  "))
	})

	_, err := g.Generate(context.Background(), port.GenerateInput{Prompt: "p"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEmptyGeneration))
}
