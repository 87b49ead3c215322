package ai

import (
	"context"
	"github.com/google/generative-ai-go/genai"
	"github.com/myrjola/smartcop/internal/errors"
	"google.golang.org/api/option"
	"log/slog"
	"strings"
)

// GeminiClient talks to Google Gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient connects to Gemini. Call Close when done.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "new gemini client")
	}
	return &GeminiClient{client: client, model: strings.TrimSpace(model)}, nil
}

func (c *GeminiClient) Close() error {
	if err := c.client.Close(); err != nil {
		return errors.Wrap(err, "close gemini client")
	}
	return nil
}

func (c *GeminiClient) newModel(system string) *genai.GenerativeModel {
	m := c.client.GenerativeModel(c.model)
	temperature := float32(Temperature)
	maxTokens := int32(MaxTokens)
	m.GenerationConfig = genai.GenerationConfig{ //nolint:exhaustruct // defaults for the rest
		Temperature:     &temperature,
		MaxOutputTokens: &maxTokens,
	}
	m.SystemInstruction = &genai.Content{
		Role:  "",
		Parts: []genai.Part{genai.Text(system)},
	}
	return m
}

// Complete implements [Completer].
func (c *GeminiClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.newModel(system).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.Wrap(err, "generate content", slog.String("model", c.model))
	}
	return textOf(resp, c.model)
}

// Chat implements [Chatter]. The last message of history is sent and the rest is used as chat history.
func (c *GeminiClient) Chat(ctx context.Context, system string, history []Message) (string, error) {
	if len(history) == 0 {
		return "", errors.Wrap(ErrEmptyCompletion, "empty history")
	}
	session := c.newModel(system).StartChat()
	for _, m := range history[:len(history)-1] {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		session.History = append(session.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	resp, err := session.SendMessage(ctx, genai.Text(history[len(history)-1].Content))
	if err != nil {
		return "", errors.Wrap(err, "send chat message", slog.String("model", c.model))
	}
	return textOf(resp, c.model)
}

func textOf(resp *genai.GenerateContentResponse, model string) (string, error) {
	if text := strings.TrimSpace(firstText(resp)); text != "" {
		return text, nil
	}
	return "", errors.Wrap(ErrEmptyCompletion, "no text in response", slog.String("model", model))
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}
