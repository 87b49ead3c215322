package main

import (
	"encoding/json"
	"fmt"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/repositories"
	"log/slog"
	"net/http"
	"time"
)

const (
	recentActivitiesLimit = 20
	// keepAliveInterval keeps proxies from closing idle event streams.
	keepAliveInterval = 30 * time.Second
)

func (app *application) listFIRs(w http.ResponseWriter, r *http.Request) {
	firs, err := app.drafts.List(r.Context(), repositories.ListOptions{
		Search: r.URL.Query().Get("q"),
		Limit:  queryInt(r, "limit"),
	})
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, firs)
}

func (app *application) getFIR(w http.ResponseWriter, r *http.Request) {
	fir, err := app.firs.Get(r.Context(), r.PathValue("caseID"))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, fir)
}

func (app *application) recentActivities(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit")
	if limit == 0 {
		limit = recentActivitiesLimit
	}
	activities, err := app.activities.Recent(r.Context(), limit)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "recent activities"))
		return
	}
	app.writeJSON(w, r, http.StatusOK, activities)
}

// streamEvents pushes every saved FIR to the client as a Server-Sent Event until the client goes away.
func (app *application) streamEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rc := http.NewResponseController(w)
	// Streams outlive the server's write timeout.
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		app.logger.LogAttrs(ctx, slog.LevelDebug, "event stream keeps write deadline", errors.SlogError(err))
	}

	events := app.events.Subscribe()
	defer app.events.Unsubscribe(events)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	// Comment lines are ignored by EventSource clients.
	if _, err := fmt.Fprint(w, ": connected\n\n"); err != nil {
		return
	}
	if err := rc.Flush(); err != nil {
		app.logger.LogAttrs(ctx, slog.LevelWarn, "event stream not flushable", errors.SlogError(err))
		return
	}

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
		case fir, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(fir)
			if err != nil {
				app.logger.LogAttrs(ctx, slog.LevelError, "failed to marshal event", errors.SlogError(err))
				continue
			}
			if _, err = fmt.Fprintf(w, "id: %d\nevent: fir-saved\ndata: %s\n\n", fir.ID, data); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}
