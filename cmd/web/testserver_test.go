package main

import (
	"context"
	"encoding/json"
	"github.com/myrjola/smartcop/internal/e2etest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// translations are what the fake language model answers to translation prompts.
var translations = map[string]string{
	"राम":       `"Ram"`,
	"चोरी":      "Theft",
	"Ram Kumar": "Ram Kumar",
}

const chatAnswer = "Section 154 CrPC covers the registration of an FIR."

// newFakeProviders serves the OpenAI-compatible API and MyMemory. MyMemory always fails so that translations come
// from the language model only.
func newFakeProviders(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			return
		}
		prompt := req.Messages[len(req.Messages)-1].Content
		reply := chatAnswer
		if _, text, ok := strings.Cut(prompt, "Text to translate: "); ok {
			reply = translations[strings.Trim(text, `"`)]
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   req.Model,
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": reply},
				"finish_reason": "stop",
			}},
		})
	})
	mux.HandleFunc("POST /v1/audio/speech", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3-fake-mp3"))
	})
	mux.HandleFunc("GET /mymemory/get", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testLookupEnv(providersURL string) func(string) (string, bool) {
	env := map[string]string{
		"SMARTCOP_ADDR":               "localhost:0",
		"SMARTCOP_SQLITE_URL":         ":memory:",
		"SMARTCOP_LOG_LEVEL":          "debug",
		"SMARTCOP_OPENROUTER_API_KEY": "test-key",
		"SMARTCOP_LLM_BASE_URL":       providersURL + "/v1",
		"SMARTCOP_MYMEMORY_URL":       providersURL + "/mymemory",
		"SMARTCOP_PROVIDER_TIMEOUT":   "2s",
	}
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// startTestServer starts the application with fake providers and an in-memory database.
func startTestServer(t *testing.T) *e2etest.Server {
	t.Helper()
	providers := newFakeProviders(t)
	server, err := e2etest.StartServer(t.Context(), io.Discard, testLookupEnv(providers.URL), run)
	require.NoError(t, err)
	return server
}

func TestShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	providers := newFakeProviders(t)
	server, err := e2etest.StartServer(ctx, io.Discard, testLookupEnv(providers.URL), run)
	require.NoError(t, err)

	var health healthResponse
	status, err := server.Client().JSON(ctx, http.MethodGet, "/api/healthy", nil, &health)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, healthResponse{Status: "ok", LLM: "openrouter", Fields: 10}, health)

	cancel()
	require.NoError(t, server.Wait())
}
