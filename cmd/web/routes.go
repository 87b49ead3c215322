package main

import (
	"github.com/justinas/alice"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"net/http"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	draft := alice.New(app.bindDraft)

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.HandleFunc("GET /api/csrf", app.csrfToken)
	mux.HandleFunc("GET /api/languages", app.languages)
	mux.HandleFunc("GET /api/fields", app.fieldDefinitions)

	mux.HandleFunc("POST /api/drafts", app.startDraft)
	mux.Handle("GET /api/drafts/current", draft.ThenFunc(app.currentDraft))
	mux.Handle("POST /api/drafts/current/locale", draft.ThenFunc(app.selectLocale))
	mux.Handle("POST /api/drafts/current/mode", draft.ThenFunc(app.selectInputMode))
	mux.Handle("POST /api/drafts/current/back", draft.ThenFunc(app.backToInputMode))
	mux.Handle("GET /api/drafts/current/question", draft.ThenFunc(app.repeatQuestion))
	mux.Handle("POST /api/drafts/current/listen/start", draft.ThenFunc(app.startListening))
	mux.Handle("POST /api/drafts/current/listen/stop", draft.ThenFunc(app.stopListening))
	mux.Handle("POST /api/drafts/current/speech", draft.ThenFunc(app.observeSpeech))
	mux.Handle("POST /api/drafts/current/audio", draft.ThenFunc(app.recognizeAudio))
	mux.Handle("POST /api/drafts/current/utterance", draft.ThenFunc(app.setUtterance))
	mux.Handle("POST /api/drafts/current/send", draft.ThenFunc(app.sendUtterance))
	mux.Handle("POST /api/drafts/current/next", draft.ThenFunc(app.nextQuestion))
	mux.Handle("POST /api/drafts/current/extract", draft.ThenFunc(app.extractAll))
	mux.Handle("PUT /api/drafts/current/fields/{key}", draft.ThenFunc(app.updateField))
	mux.Handle("POST /api/drafts/current/save", draft.ThenFunc(app.saveDraft))
	mux.Handle("POST /api/drafts/current/submit", draft.ThenFunc(app.submitDraft))

	mux.HandleFunc("GET /api/firs", app.listFIRs)
	mux.HandleFunc("GET /api/firs/{caseID}", app.getFIR)
	mux.HandleFunc("GET /api/activities", app.recentActivities)

	mux.HandleFunc("POST /api/chat", app.chat)

	mux.HandleFunc("/", app.notFound)

	// Event streams bypass the session and the handler timeout, both of which buffer the response.
	root := http.NewServeMux()
	root.HandleFunc("GET /api/events", app.streamEvents)
	root.Handle("/", timeoutHandler(alice.New(app.sessionManager.LoadAndSave, commonContext).Then(mux), handlerTimeout))

	standard := alice.New(app.recoverPanic, app.logRequest, secureHeaders, app.noSurf)
	return otelhttp.NewHandler(standard.Then(root), "smartcop",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}))
}
