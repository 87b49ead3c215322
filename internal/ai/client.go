// Package ai wraps the language model backends used for translation, speech synthesis and the legal assistant.
package ai

import (
	"context"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/sashabaranov/go-openai"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

var (
	ErrNotConfigured   = errors.NewSentinel("language model not configured")
	ErrEmptyCompletion = errors.NewSentinel("empty completion")
)

// Completer produces a single completion for a system instruction and a user prompt.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Role of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Chatter continues a conversation.
type Chatter interface {
	Chat(ctx context.Context, system string, history []Message) (string, error)
}

const (
	MaxTokens   = 1500
	Temperature = 0.7
)

// Options configures an OpenAI-compatible [Client].
type Options struct {
	APIKey string
	// BaseURL selects the OpenAI-compatible endpoint, e.g. https://openrouter.ai/api/v1.
	BaseURL  string
	Model    string
	TTSModel string
	// Referer and Title identify the application to OpenRouter.
	Referer    string
	Title      string
	HTTPClient *http.Client
}

// Client talks to an OpenAI-compatible API such as OpenRouter.
type Client struct {
	client   *openai.Client
	model    string
	ttsModel string
	enabled  bool
}

func NewClient(opts Options) *Client {
	config := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		config.BaseURL = strings.TrimSuffix(opts.BaseURL, "/")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{} //nolint:exhaustruct // defaults are fine, callers bound requests with contexts
	}
	transport := httpClient.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	withHeaders := *httpClient
	withHeaders.Transport = headerTransport{
		next:    transport,
		referer: opts.Referer,
		title:   opts.Title,
	}
	config.HTTPClient = &withHeaders
	return &Client{
		client:   openai.NewClientWithConfig(config),
		model:    opts.Model,
		ttsModel: opts.TTSModel,
		enabled:  opts.APIKey != "",
	}
}

// Complete implements [Completer].
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system}, //nolint:exhaustruct // optional fields
		{Role: openai.ChatMessageRoleUser, Content: prompt},   //nolint:exhaustruct // optional fields
	}
	return c.complete(ctx, messages)
}

// Chat implements [Chatter].
func (c *Client) Chat(ctx context.Context, system string, history []Message) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{ //nolint:exhaustruct // optional fields
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{ //nolint:exhaustruct // optional fields
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return c.complete(ctx, messages)
}

func (c *Client) complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	if !c.enabled {
		return "", ErrNotConfigured
	}
	completion, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{ //nolint:exhaustruct // this is better for readability
			Model:       c.model,
			MaxTokens:   MaxTokens,
			Temperature: Temperature,
			Messages:    messages,
		},
	)
	if err != nil {
		return "", errors.Wrap(err, "create chat completion", slog.String("model", c.model))
	}
	if len(completion.Choices) == 0 {
		return "", errors.Wrap(ErrEmptyCompletion, "no choices", slog.String("model", c.model))
	}
	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return "", errors.Wrap(ErrEmptyCompletion, "blank content", slog.String("model", c.model))
	}
	return content, nil
}

// Speech synthesizes text with the configured text-to-speech model. The returned audio is MP3.
func (c *Client) Speech(ctx context.Context, text string, voice openai.SpeechVoice) ([]byte, error) {
	if !c.enabled {
		return nil, ErrNotConfigured
	}
	var (
		err   error
		audio io.ReadCloser
		data  []byte
	)
	if audio, err = c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{ //nolint:exhaustruct // default speed
		Model:          openai.SpeechModel(c.ttsModel),
		Input:          text,
		Voice:          voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	}); err != nil {
		return nil, errors.Wrap(err, "create speech", slog.String("model", c.ttsModel))
	}
	defer func() {
		_ = audio.Close()
	}()
	if data, err = io.ReadAll(audio); err != nil {
		return nil, errors.Wrap(err, "read speech")
	}
	if len(data) == 0 {
		return nil, errors.Wrap(ErrEmptyCompletion, "empty audio")
	}
	return data, nil
}

// headerTransport adds the OpenRouter attribution headers to every request.
type headerTransport struct {
	next    http.RoundTripper
	referer string
	title   string
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.referer == "" && t.title == "" {
		return t.next.RoundTrip(req) //nolint:wrapcheck // transparent transport
	}
	req = req.Clone(req.Context())
	if t.referer != "" {
		req.Header.Set("HTTP-Referer", t.referer)
	}
	if t.title != "" {
		req.Header.Set("X-Title", t.title)
	}
	return t.next.RoundTrip(req) //nolint:wrapcheck // transparent transport
}

// Disabled is used when no language model is configured. All calls fail with [ErrNotConfigured].
type Disabled struct{}

func (Disabled) Complete(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) Chat(context.Context, string, []Message) (string, error) {
	return "", ErrNotConfigured
}
