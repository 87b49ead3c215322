package main

import (
	"context"
	"github.com/myrjola/smartcop/internal/e2etest"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/fields"
	"github.com/myrjola/smartcop/internal/logging"
	"log/slog"
	"net/http"
	"os"
	"time"
)

var errUnexpectedStatus = errors.NewSentinel("unexpected status")

// TestDrafting starts a draft and fills in the first field without persisting anything.
func TestDrafting(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	if err := client.WaitForReady(ctx, "/api/healthy"); err != nil {
		return errors.Wrap(err, "wait for server")
	}
	steps := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"start draft", http.MethodPost, "/api/drafts", nil, http.StatusCreated},
		{"select locale", http.MethodPost, "/api/drafts/current/locale", map[string]string{"locale": "en"}, http.StatusOK},
		{"select mode", http.MethodPost, "/api/drafts/current/mode", map[string]string{"mode": "text"}, http.StatusOK},
		{"set utterance", http.MethodPost, "/api/drafts/current/utterance",
			map[string]string{"text": "my name is smoke test"}, http.StatusOK},
		{"send utterance", http.MethodPost, "/api/drafts/current/send", nil, http.StatusOK},
	}
	for _, step := range steps {
		status, err := client.JSON(ctx, step.method, step.path, step.body, nil)
		if err != nil {
			return errors.Wrap(err, step.name)
		}
		if status != step.status {
			return errors.Wrap(errUnexpectedStatus, step.name, slog.Int("status", status))
		}
	}

	var defs []struct {
		Key fields.Key `json:"key"`
	}
	status, err := client.JSON(ctx, http.MethodGet, "/api/fields", nil, &defs)
	if err != nil {
		return errors.Wrap(err, "list fields")
	}
	if status != http.StatusOK || len(defs) == 0 {
		return errors.Wrap(errUnexpectedStatus, "list fields", slog.Int("status", status))
	}
	return nil
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		url      = "https://" + hostname
		client   *e2etest.Client
		err      error
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", url))

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", errors.SlogError(err))
		os.Exit(1)
	}
	if err = TestDrafting(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing drafting", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
