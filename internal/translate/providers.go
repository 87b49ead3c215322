package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/myrjola/smartcop/internal/ai"
	"github.com/myrjola/smartcop/internal/bhashini"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/locale"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// LLMProvider asks a language model for a literal translation in a formal register.
type LLMProvider struct {
	completer ai.Completer
}

func NewLLMProvider(completer ai.Completer) *LLMProvider {
	return &LLMProvider{completer: completer}
}

func (p *LLMProvider) Name() string { return "llm" }

const translatorSystemPrompt = "You are a professional translator for police reports. Reply with the translation only."

var wrappingQuotes = regexp.MustCompile(`^["']|["']$`)

func (p *LLMProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	prompt := fmt.Sprintf(`You are a professional translator. Translate the following text from %s to %s.

Important guidelines:
- Provide only the translated text, no explanations
- Maintain the original meaning and context
- Use appropriate formal/informal tone based on context
- For legal/police contexts, use proper terminology

Text to translate: "%s"`, locale.Name(source), locale.Name(target), text)

	translated, err := p.completer.Complete(ctx, translatorSystemPrompt, prompt)
	if err != nil {
		return "", errors.Wrap(err, "complete translation prompt")
	}
	return strings.TrimSpace(wrappingQuotes.ReplaceAllString(strings.TrimSpace(translated), "")), nil
}

// BhashiniProvider uses the Bhashini translation pipeline.
type BhashiniProvider struct {
	client *bhashini.Client
}

func NewBhashiniProvider(client *bhashini.Client) *BhashiniProvider {
	return &BhashiniProvider{client: client}
}

func (p *BhashiniProvider) Name() string { return "bhashini" }

func (p *BhashiniProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	translated, err := p.client.Translate(ctx, text, source, target)
	if err != nil {
		return "", errors.Wrap(err, "bhashini translate")
	}
	return translated, nil
}

// ErrMyMemory is returned when MyMemory answers with a non-success response status.
var ErrMyMemory = errors.NewSentinel("mymemory error")

// MyMemoryProvider uses the public MyMemory translation memory API.
type MyMemoryProvider struct {
	baseURL    string
	email      string
	httpClient *http.Client
}

// NewMyMemoryProvider creates the provider. The optional email raises the anonymous daily quota.
func NewMyMemoryProvider(baseURL, email string, httpClient *http.Client) *MyMemoryProvider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &MyMemoryProvider{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		email:      email,
		httpClient: httpClient,
	}
}

func (p *MyMemoryProvider) Name() string { return "mymemory" }

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	// ResponseStatus is a number on success and sometimes a string on errors.
	ResponseStatus  json.RawMessage `json:"responseStatus"`
	ResponseDetails string          `json:"responseDetails"`
}

func (p *MyMemoryProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	query := url.Values{}
	query.Set("q", text)
	query.Set("langpair", source+"|"+target)
	if p.email != "" {
		query.Set("de", p.email)
	}

	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	if req, err = http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/get?"+query.Encode(), nil); err != nil {
		return "", errors.Wrap(err, "new mymemory request")
	}
	if resp, err = p.httpClient.Do(req); err != nil {
		return "", errors.Wrap(err, "mymemory request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", errors.Wrap(ErrMyMemory, "mymemory status", slog.Int("status", resp.StatusCode))
	}
	var out myMemoryResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "decode mymemory response")
	}
	if status := strings.Trim(string(out.ResponseStatus), `"`); status != "200" {
		return "", errors.Wrap(ErrMyMemory, "mymemory response status",
			slog.String("status", status), slog.String("details", out.ResponseDetails))
	}
	return out.ResponseData.TranslatedText, nil
}
