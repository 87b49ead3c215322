// Package bhashini is a client for the Bhashini ULCA compute API, India's national language platform, which
// provides translation, speech recognition and speech synthesis for Indian languages.
package bhashini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"github.com/myrjola/smartcop/internal/errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

var (
	ErrNotConfigured      = errors.NewSentinel("bhashini not configured")
	ErrUnexpectedResponse = errors.NewSentinel("unexpected bhashini response")
)

const computePath = "/ulca/apis/v0/model/compute"

type Client struct {
	baseURL    string
	userID     string
	apiKey     string
	httpClient *http.Client
}

func New(baseURL, userID, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		userID:     userID,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Enabled reports whether credentials are configured.
func (c *Client) Enabled() bool {
	return c.userID != "" && c.apiKey != ""
}

type languageConfig struct {
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage,omitempty"`
}

type taskConfig struct {
	Language languageConfig `json:"language"`
}

type pipelineTask struct {
	TaskType string     `json:"taskType"`
	Config   taskConfig `json:"config"`
}

type sourceText struct {
	Source string `json:"source"`
}

type audioContent struct {
	AudioContent string `json:"audioContent"`
}

type inputData struct {
	Input []sourceText   `json:"input,omitempty"`
	Audio []audioContent `json:"audio,omitempty"`
}

type computeRequest struct {
	PipelineTasks []pipelineTask `json:"pipelineTasks"`
	InputData     inputData      `json:"inputData"`
}

type computeResponse struct {
	PipelineResponse []struct {
		Output []struct {
			Source string `json:"source"`
			Target string `json:"target"`
		} `json:"output"`
		Audio []audioContent `json:"audio"`
	} `json:"pipelineResponse"`
}

func (c *Client) compute(ctx context.Context, request computeRequest) (*computeResponse, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}
	var (
		err  error
		body []byte
		req  *http.Request
		resp *http.Response
	)
	taskType := request.PipelineTasks[0].TaskType
	if body, err = json.Marshal(request); err != nil {
		return nil, errors.Wrap(err, "marshal compute request")
	}
	if req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+computePath,
		bytes.NewReader(body)); err != nil {
		return nil, errors.Wrap(err, "new compute request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("userID", c.userID)
	req.Header.Set("ulcaApiKey", c.apiKey)
	if resp, err = c.httpClient.Do(req); err != nil {
		return nil, errors.Wrap(err, "compute", slog.String("task", taskType))
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errors.Wrap(ErrUnexpectedResponse, "compute status",
			slog.String("task", taskType), slog.Int("status", resp.StatusCode))
	}
	var out computeResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "decode compute response", slog.String("task", taskType))
	}
	if len(out.PipelineResponse) == 0 {
		return nil, errors.Wrap(ErrUnexpectedResponse, "empty pipeline response", slog.String("task", taskType))
	}
	return &out, nil
}

// Translate translates text between two locale codes.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	out, err := c.compute(ctx, computeRequest{
		PipelineTasks: []pipelineTask{{
			TaskType: "translation",
			Config:   taskConfig{Language: languageConfig{SourceLanguage: source, TargetLanguage: target}},
		}},
		InputData: inputData{Input: []sourceText{{Source: text}}, Audio: nil},
	})
	if err != nil {
		return "", err
	}
	if len(out.PipelineResponse[0].Output) == 0 || out.PipelineResponse[0].Output[0].Target == "" {
		return "", errors.Wrap(ErrUnexpectedResponse, "no translation")
	}
	return out.PipelineResponse[0].Output[0].Target, nil
}

// Transcribe runs speech recognition on audio in the given locale.
func (c *Client) Transcribe(ctx context.Context, audio []byte, lang string) (string, error) {
	out, err := c.compute(ctx, computeRequest{
		PipelineTasks: []pipelineTask{{
			TaskType: "asr",
			Config:   taskConfig{Language: languageConfig{SourceLanguage: lang, TargetLanguage: ""}},
		}},
		InputData: inputData{
			Input: nil,
			Audio: []audioContent{{AudioContent: base64.StdEncoding.EncodeToString(audio)}},
		},
	})
	if err != nil {
		return "", err
	}
	if len(out.PipelineResponse[0].Output) == 0 {
		return "", errors.Wrap(ErrUnexpectedResponse, "no transcript")
	}
	return out.PipelineResponse[0].Output[0].Source, nil
}

// Synthesize converts text to WAV audio in the given locale.
func (c *Client) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	out, err := c.compute(ctx, computeRequest{
		PipelineTasks: []pipelineTask{{
			TaskType: "tts",
			Config:   taskConfig{Language: languageConfig{SourceLanguage: lang, TargetLanguage: ""}},
		}},
		InputData: inputData{Input: []sourceText{{Source: text}}, Audio: nil},
	})
	if err != nil {
		return nil, err
	}
	if len(out.PipelineResponse[0].Audio) == 0 {
		return nil, errors.Wrap(ErrUnexpectedResponse, "no audio")
	}
	audio, err := base64.StdEncoding.DecodeString(out.PipelineResponse[0].Audio[0].AudioContent)
	if err != nil {
		return nil, errors.Wrap(err, "decode audio")
	}
	if len(audio) == 0 {
		return nil, errors.Wrap(ErrUnexpectedResponse, "empty audio")
	}
	return audio, nil
}
