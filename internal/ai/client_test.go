package ai_test

import (
	"context"
	"encoding/json"
	"github.com/myrjola/smartcop/internal/ai"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newFakeOpenRouter(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "http://localhost:4000", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "SmartCop AI", r.Header.Get("X-Title"))
		var req chatRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			return
		}
		assert.Equal(t, "openai/gpt-4o", req.Model)
		assert.Equal(t, "system", req.Messages[0].Role)
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
	mux.HandleFunc("POST /api/v1/audio/speech", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3-fake-mp3"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server, apiKey string) *ai.Client {
	return ai.NewClient(ai.Options{
		APIKey:     apiKey,
		BaseURL:    srv.URL + "/api/v1/",
		Model:      "openai/gpt-4o",
		TTSModel:   "tts-1-hd",
		Referer:    "http://localhost:4000",
		Title:      "SmartCop AI",
		HTTPClient: srv.Client(),
	})
}

func TestClient_Complete(t *testing.T) {
	srv := newFakeOpenRouter(t, "  My name is Ram  ")
	client := newTestClient(srv, "test-key")

	got, err := client.Complete(context.Background(), "You are a translator.", "मेरा नाम राम है")
	require.NoError(t, err)
	require.Equal(t, "My name is Ram", got)
}

func TestClient_Chat(t *testing.T) {
	srv := newFakeOpenRouter(t, "Read the suspect their rights.")
	client := newTestClient(srv, "test-key")

	got, err := client.Chat(context.Background(), "You are a legal assistant.", []ai.Message{
		{Role: ai.RoleUser, Content: "What do I do first?"},
	})
	require.NoError(t, err)
	require.Equal(t, "Read the suspect their rights.", got)
}

func TestClient_blankCompletion(t *testing.T) {
	srv := newFakeOpenRouter(t, "   ")
	client := newTestClient(srv, "test-key")

	_, err := client.Complete(context.Background(), "system", "prompt")
	require.ErrorIs(t, err, ai.ErrEmptyCompletion)
}

func TestClient_notConfigured(t *testing.T) {
	srv := newFakeOpenRouter(t, "unused")
	client := newTestClient(srv, "")

	_, err := client.Complete(context.Background(), "system", "prompt")
	require.ErrorIs(t, err, ai.ErrNotConfigured)
	_, err = client.Speech(context.Background(), "hello", openai.VoiceAlloy)
	require.ErrorIs(t, err, ai.ErrNotConfigured)
	_, err = ai.Disabled{}.Complete(context.Background(), "system", "prompt")
	require.ErrorIs(t, err, ai.ErrNotConfigured)
}

func TestClient_Speech(t *testing.T) {
	srv := newFakeOpenRouter(t, "unused")
	client := newTestClient(srv, "test-key")

	audio, err := client.Speech(context.Background(), "आपका पूरा नाम क्या है?", openai.VoiceNova)
	require.NoError(t, err)
	require.Equal(t, []byte("ID3-fake-mp3"), audio)
}
