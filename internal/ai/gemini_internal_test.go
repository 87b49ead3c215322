package ai

import (
	"context"
	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestTextOf(t *testing.T) {
	resp := &genai.GenerateContentResponse{ //nolint:exhaustruct // only candidates matter
		Candidates: []*genai.Candidate{
			{Content: nil}, //nolint:exhaustruct // only content matters
			{ //nolint:exhaustruct // only content matters
				Content: &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(" My name is Ram ")}},
			},
		},
	}
	got, err := textOf(resp, "gemini-1.5-flash")
	require.NoError(t, err)
	require.Equal(t, "My name is Ram", got)

	_, err = textOf(nil, "gemini-1.5-flash")
	require.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestNewGeminiClient_requiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), " ", "gemini-1.5-flash")
	require.ErrorIs(t, err, ErrNotConfigured)
}
