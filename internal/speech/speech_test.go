package speech_test

import (
	"context"
	"encoding/json"
	"github.com/myrjola/smartcop/internal/bhashini"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/speech"
	"github.com/myrjola/smartcop/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		code      string
		kind      speech.ErrorKind
		retryable bool
	}{
		{"not-allowed", speech.KindPermissionDenied, false},
		{"permission-denied", speech.KindPermissionDenied, false},
		{"no-speech", speech.KindNoSpeech, true},
		{"aborted", speech.KindAborted, true},
		{"network", speech.KindNetwork, false},
		{"service-unavailable", speech.KindUnavailable, false},
		{"language-not-supported", speech.KindUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := speech.Classify(tt.code)
			require.Equal(t, tt.kind, err.Kind)
			require.Equal(t, tt.retryable, err.Retryable())
			require.Equal(t, !tt.retryable, err.Fatal())
			require.ErrorIs(t, err, speech.ErrSpeech)
		})
	}
	require.Equal(t, "speech provider error: network", speech.Classify("network").Error())
}

func TestFromError(t *testing.T) {
	require.Nil(t, speech.FromError(nil))

	classified := speech.Classify("no-speech")
	require.Same(t, classified, speech.FromError(errors.Wrap(classified, "listen")))

	err := speech.FromError(errors.Wrap(bhashini.ErrNotConfigured, "recognize"))
	require.Equal(t, speech.KindUnavailable, err.Kind)
	require.False(t, err.Retryable(), "missing credentials do not fix themselves")

	err = speech.FromError(errors.New("connection refused"))
	require.Equal(t, speech.KindNetwork, err.Kind)
	require.True(t, err.Fatal())
}

func bhashiniServer(t *testing.T, output map[string]any) *bhashini.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"pipelineResponse": []any{output}})
	}))
	t.Cleanup(srv.Close)
	return bhashini.New(srv.URL, "user", "key", srv.Client())
}

func TestBhashiniRecognizer(t *testing.T) {
	logger := testhelpers.NewLogger(io.Discard)
	ctx := context.Background()

	t.Run("final result", func(t *testing.T) {
		client := bhashiniServer(t, map[string]any{"output": []any{map[string]string{"source": " मेरा नाम राम है "}}})
		results, err := speech.NewBhashiniRecognizer(client, logger).Recognize(ctx, []byte("RIFF"), "hi")
		require.NoError(t, err)
		var got []speech.Result
		for r := range results {
			got = append(got, r)
		}
		require.Equal(t, []speech.Result{{Transcript: "मेरा नाम राम है", Final: true, Err: nil}}, got)
	})

	t.Run("no speech", func(t *testing.T) {
		client := bhashiniServer(t, map[string]any{"output": []any{map[string]string{"source": ""}}})
		results, err := speech.NewBhashiniRecognizer(client, logger).Recognize(ctx, []byte("RIFF"), "hi")
		require.NoError(t, err)
		r := <-results
		require.Equal(t, speech.KindNoSpeech, r.Err.Kind)
	})

	t.Run("network", func(t *testing.T) {
		client := bhashini.New("http://127.0.0.1:1", "user", "key", nil)
		results, err := speech.NewBhashiniRecognizer(client, logger).Recognize(ctx, []byte("RIFF"), "hi")
		require.NoError(t, err)
		r := <-results
		require.Equal(t, speech.KindNetwork, r.Err.Kind)
		require.True(t, r.Err.Fatal())
	})

	t.Run("not configured", func(t *testing.T) {
		client := bhashini.New("http://127.0.0.1:1", "", "", nil)
		_, err := speech.NewBhashiniRecognizer(client, logger).Recognize(ctx, []byte("RIFF"), "hi")
		require.ErrorIs(t, err, bhashini.ErrNotConfigured)
	})
}

type fakeSynth struct {
	audio speech.Audio
	err   error
	calls int
}

func (s *fakeSynth) Synthesize(context.Context, string, string) (speech.Audio, error) {
	s.calls++
	return s.audio, s.err
}

func TestChain(t *testing.T) {
	logger := testhelpers.NewLogger(io.Discard)
	ctx := context.Background()

	t.Run("falls back in order", func(t *testing.T) {
		failing := &fakeSynth{audio: speech.Audio{}, err: errors.New("quota"), calls: 0} //nolint:exhaustruct // zero
		empty := &fakeSynth{audio: speech.Audio{}, err: nil, calls: 0}                   //nolint:exhaustruct // zero
		working := &fakeSynth{
			audio: speech.Audio{Data: []byte("RIFF"), ContentType: "audio/wav", Provider: "bhashini", Text: "", Lang: "hi-IN",
				Fallback: false},
			err:   nil,
			calls: 0,
		}
		chain := speech.NewChain(logger, time.Second).With("openai", failing).With("empty", empty).
			With("bhashini", working)

		got, err := chain.Synthesize(ctx, "आपका पूरा नाम क्या है?", "hi")
		require.NoError(t, err)
		require.Equal(t, "bhashini", got.Provider)
		require.Equal(t, 1, failing.calls)
		require.Equal(t, 1, empty.calls)
	})

	t.Run("local fallback never fails", func(t *testing.T) {
		failing := &fakeSynth{audio: speech.Audio{}, err: errors.New("down"), calls: 0} //nolint:exhaustruct // zero
		got, err := speech.NewChain(logger, time.Second).With("openai", failing).
			Synthesize(ctx, "What is your full name?", "xx")
		require.NoError(t, err)
		require.Equal(t, speech.Local("What is your full name?", "xx"), got)
		require.True(t, got.Fallback)
		require.Equal(t, "hi-IN", got.Lang)
	})
}

func TestVoice(t *testing.T) {
	require.Equal(t, "nova", string(speech.Voice("hi")))
	require.Equal(t, "alloy", string(speech.Voice("ta")))
}
