package e2etest

import (
	"context"
	"fmt"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/logging"
	"io"
	"log/slog"
)

type Server struct {
	url    string
	client *Client
	done   chan struct{}
	err    error
}

// LogAddrKey is the key used to log the address the server is listening on.
const LogAddrKey = "addr"

// StartServer starts the test server, waits for it to be ready, and return the server URL for testing.
//
// logSink is the writer to which the server logs are written. You usually want to use [io.Discard].
// lookupEnv is a function that returns the value of an environment variable. It has same signature as [os.LookupEnv].
// run is the function that starts the server. It must log the address it listens on under [LogAddrKey].
func StartServer(
	ctx context.Context,
	logSink io.Writer,
	lookupEnv func(string) (string, bool),
	run func(context.Context, *slog.Logger, func(string) (string, bool)) error,
) (*Server, error) {
	ctx, cancel := context.WithCancelCause(ctx)

	// We need to grab the dynamically allocated port from the log output.
	addrCh := make(chan string, 1)
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(logSink, &slog.HandlerOptions{
		AddSource: false,
		Level:     slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == LogAddrKey {
				// Only the first address is of interest. Later records must not block the server.
				select {
				case addrCh <- a.Value.String():
				default:
				}
			}
			return a
		},
	})))

	server := &Server{url: "", client: nil, done: make(chan struct{}), err: nil}

	// Start the server and wait for it to be ready.
	go func() {
		defer close(server.done)
		if server.err = run(ctx, logger, lookupEnv); server.err != nil {
			cancel(server.err)
		}
	}()
	select {
	case <-ctx.Done():
		return nil, errors.Wrap(context.Cause(ctx), "server stopped before listening")
	case addr := <-addrCh:
		var (
			err    error
			client *Client
		)
		serverURL := fmt.Sprintf("http://%s", addr)
		if client, err = NewClient(serverURL); err != nil {
			return nil, errors.Wrap(err, "new client")
		}
		if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
			return nil, errors.Wrap(err, "wait for ready")
		}
		server.url = serverURL
		server.client = client
		return server, nil
	}
}

// Wait blocks until run returns, usually after the context given to [StartServer] is cancelled, and returns its
// error.
func (s *Server) Wait() error {
	<-s.done
	return s.err
}

func (s *Server) Client() *Client {
	return s.client
}

func (s *Server) URL() string {
	return s.url
}
