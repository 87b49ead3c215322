package bhashini_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"github.com/myrjola/smartcop/internal/bhashini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
)

type computeRequest struct {
	PipelineTasks []struct {
		TaskType string `json:"taskType"`
		Config   struct {
			Language struct {
				SourceLanguage string `json:"sourceLanguage"`
				TargetLanguage string `json:"targetLanguage"`
			} `json:"language"`
		} `json:"config"`
	} `json:"pipelineTasks"`
	InputData struct {
		Input []struct {
			Source string `json:"source"`
		} `json:"input"`
		Audio []struct {
			AudioContent string `json:"audioContent"`
		} `json:"audio"`
	} `json:"inputData"`
}

func newFakeBhashini(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /ulca/apis/v0/model/compute", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "user-1", r.Header.Get("userID"))
		assert.Equal(t, "key-1", r.Header.Get("ulcaApiKey"))
		var req computeRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			return
		}
		lang := req.PipelineTasks[0].Config.Language
		var resp any
		switch req.PipelineTasks[0].TaskType {
		case "translation":
			assert.Equal(t, "hi", lang.SourceLanguage)
			assert.Equal(t, "en", lang.TargetLanguage)
			assert.Equal(t, "मेरा नाम राम है", req.InputData.Input[0].Source)
			resp = map[string]any{"pipelineResponse": []any{
				map[string]any{"output": []any{map[string]string{"source": "मेरा नाम राम है", "target": "My name is Ram"}}},
			}}
		case "asr":
			audio, err := base64.StdEncoding.DecodeString(req.InputData.Audio[0].AudioContent)
			assert.NoError(t, err)
			assert.Equal(t, "RIFF-audio", string(audio))
			resp = map[string]any{"pipelineResponse": []any{
				map[string]any{"output": []any{map[string]string{"source": "मेरा नाम राम है"}}},
			}}
		case "tts":
			resp = map[string]any{"pipelineResponse": []any{
				map[string]any{"audio": []any{
					map[string]string{"audioContent": base64.StdEncoding.EncodeToString([]byte("RIFF-wav"))},
				}},
			}}
		default:
			http.Error(w, "unknown task", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient(t *testing.T) {
	srv := newFakeBhashini(t)
	client := bhashini.New(srv.URL+"/", "user-1", "key-1", srv.Client())
	ctx := context.Background()

	t.Run("Translate", func(t *testing.T) {
		got, err := client.Translate(ctx, "मेरा नाम राम है", "hi", "en")
		require.NoError(t, err)
		require.Equal(t, "My name is Ram", got)
	})

	t.Run("Transcribe", func(t *testing.T) {
		got, err := client.Transcribe(ctx, []byte("RIFF-audio"), "hi")
		require.NoError(t, err)
		require.Equal(t, "मेरा नाम राम है", got)
	})

	t.Run("Synthesize", func(t *testing.T) {
		got, err := client.Synthesize(ctx, "नमस्ते", "hi")
		require.NoError(t, err)
		require.Equal(t, []byte("RIFF-wav"), got)
	})
}

func TestClient_errors(t *testing.T) {
	ctx := context.Background()

	_, err := bhashini.New("http://127.0.0.1:1", "", "", nil).Translate(ctx, "hello", "en", "hi")
	require.ErrorIs(t, err, bhashini.ErrNotConfigured)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)
	_, err = bhashini.New(srv.URL, "user-1", "key-1", srv.Client()).Translate(ctx, "hello", "en", "hi")
	require.ErrorIs(t, err, bhashini.ErrUnexpectedResponse)
}
