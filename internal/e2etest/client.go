package e2etest

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/justinas/nosurf"
	"github.com/myrjola/smartcop/internal/errors"
	"io"
	"log/slog"
	"net/http"
	"time"
)

type Client struct {
	client    *http.Client
	url       string
	csrfToken string
}

// NewClient creates a JSON API client with a cookie jar so that the browser session persists between requests.
func NewClient(url string) (*Client, error) {
	jar, err := newUnsafeCookieJar()
	if err != nil {
		return nil, errors.Wrap(err, "create unsafe cookie jar")
	}
	return &Client{
		client:    &http.Client{Jar: jar}, //nolint:exhaustruct // defaults are fine
		url:       url,
		csrfToken: "",
	}, nil
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			c.url+urlPath,
			nil,
		); err != nil {
			return errors.Wrap(err, "create request")
		}

		if resp, err = c.client.Do(req); err == nil {
			if err = resp.Body.Close(); err != nil {
				return errors.Wrap(err, "close response body")
			}
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "context cancelled")
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // 100ms
		}
	}
}

// Get fetches a URL and returns the response. The caller closes the body.
func (c *Client) Get(ctx context.Context, urlPath string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+urlPath, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "do request")
	}
	return resp, nil
}

// CSRFToken fetches a CSRF token once and caches it for the lifetime of the client.
func (c *Client) CSRFToken(ctx context.Context) (string, error) {
	if c.csrfToken != "" {
		return c.csrfToken, nil
	}
	var body struct {
		Token string `json:"token"`
	}
	status, err := c.JSON(ctx, http.MethodGet, "/api/csrf", nil, &body)
	if err != nil {
		return "", errors.Wrap(err, "get CSRF token")
	}
	if status != http.StatusOK || body.Token == "" {
		return "", errors.New("no CSRF token", slog.Int("status", status))
	}
	c.csrfToken = body.Token
	return c.csrfToken, nil
}

// JSON sends in as a JSON body and decodes the response into out when out is not nil. Mutating requests carry the
// CSRF token. The status code is returned for any response.
func (c *Client) JSON(ctx context.Context, method, urlPath string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return 0, errors.Wrap(err, "marshal request")
		}
		body = bytes.NewReader(data)
	}
	return c.Do(ctx, method, urlPath, "application/json", body, out)
}

// Do sends a request with the given content type and decodes a JSON response into out when out is not nil.
func (c *Client) Do(ctx context.Context, method, urlPath, contentType string, body io.Reader, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url+urlPath, body)
	if err != nil {
		return 0, errors.Wrap(err, "create request")
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if method != http.MethodGet && method != http.MethodHead {
		var token string
		if token, err = c.CSRFToken(ctx); err != nil {
			return 0, err
		}
		req.Header.Set(nosurf.HeaderName, token)
	}
	var resp *http.Response
	if resp, err = c.client.Do(req); err != nil {
		return 0, errors.Wrap(err, "do request", slog.String("path", urlPath))
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, errors.Wrap(err, "decode response", slog.Int("status", resp.StatusCode))
	}
	return resp.StatusCode, nil
}
