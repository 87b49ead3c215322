package main

import (
	"encoding/json"
	"github.com/myrjola/smartcop/internal/chatbot"
	"github.com/myrjola/smartcop/internal/drafting"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/extract"
	"github.com/myrjola/smartcop/internal/fields"
	"github.com/myrjola/smartcop/internal/repositories"
	"github.com/myrjola/smartcop/internal/speech"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// maxJSONBody limits request bodies of the JSON endpoints.
const maxJSONBody = 1 << 20

var errBadRequest = errors.NewSentinel("bad request")

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "marshal response"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// decodeJSON decodes the request body into dst. Unknown fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.Wrap(errors.Join(errBadRequest, err), "decode JSON body")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.Wrap(errBadRequest, "body must contain a single JSON value")
	}
	return nil
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error",
		slog.String("method", method), slog.String("uri", uri), errors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError, errorBody{
		Error: http.StatusText(http.StatusInternalServerError),
		Code:  "internal",
	})
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	attrs := []slog.Attr{slog.String("method", method), slog.String("uri", uri)}
	message := http.StatusText(status)
	if err != nil {
		attrs = append(attrs, errors.SlogError(err))
		message = err.Error()
	}
	app.logger.LogAttrs(r.Context(), slog.LevelDebug, message, attrs...)
	app.writeJSON(w, r, status, errorBody{Error: message, Code: code})
}

// errorResponse maps domain errors to HTTP responses.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var providerErr *speech.ProviderError
	switch {
	case errors.Is(err, fields.ErrUnknownField):
		app.clientError(w, r, http.StatusBadRequest, "unknown-field", err)
	case errors.Is(err, errBadRequest), errors.Is(err, chatbot.ErrEmptyMessage):
		app.clientError(w, r, http.StatusBadRequest, "bad-request", err)
	case errors.Is(err, extract.ErrNoMatch):
		app.clientError(w, r, http.StatusUnprocessableEntity, "no-match", err)
	case errors.Is(err, drafting.ErrSubmitted):
		app.clientError(w, r, http.StatusConflict, "submitted", err)
	case errors.Is(err, drafting.ErrInvalidTransition):
		app.clientError(w, r, http.StatusConflict, "invalid-transition", err)
	case errors.Is(err, drafting.ErrSessionNotFound), errors.Is(err, repositories.ErrNotFound):
		app.clientError(w, r, http.StatusNotFound, "not-found", err)
	case errors.Is(err, drafting.ErrPersistence):
		app.logger.LogAttrs(r.Context(), slog.LevelError, "persistence failure", errors.SlogError(err))
		app.writeJSON(w, r, http.StatusServiceUnavailable, errorBody{
			Error: "Saving the FIR failed. Your answers are kept, please retry.",
			Code:  "persistence",
		})
	case errors.As(err, &providerErr):
		status := http.StatusServiceUnavailable
		if providerErr.Kind == speech.KindPermissionDenied {
			status = http.StatusForbidden
		}
		app.clientError(w, r, status, "speech-"+string(providerErr.Kind), providerErr)
	default:
		app.serverError(w, r, err)
	}
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.clientError(w, r, http.StatusNotFound, "not-found", nil)
}

// queryInt parses an optional non-negative integer query parameter. Invalid values count as absent.
func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(name)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
