package main

import (
	"encoding/base64"
	"github.com/myrjola/smartcop/internal/contexthelpers"
	"github.com/myrjola/smartcop/internal/drafting"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/fields"
	"github.com/myrjola/smartcop/internal/speech"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// maxAudioBody limits recordings sent for server-side recognition.
const maxAudioBody = 10 << 20

// draftHandler is a handler operating on the drafting session bound to the request.
type draftHandler func(w http.ResponseWriter, r *http.Request, s *drafting.Session) error

// withDraft looks up the session and maps the handler's error to a response.
func (app *application) withDraft(w http.ResponseWriter, r *http.Request, h draftHandler) {
	s, err := app.drafts.Session(contexthelpers.DraftID(r.Context()))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}
	if err = h(w, r, s); err != nil {
		app.errorResponse(w, r, err)
	}
}

// mutateDraft applies mutate and responds with the resulting snapshot.
func (app *application) mutateDraft(w http.ResponseWriter, r *http.Request, mutate func(*drafting.Session) error) {
	app.withDraft(w, r, func(w http.ResponseWriter, r *http.Request, s *drafting.Session) error {
		if err := mutate(s); err != nil {
			return err
		}
		app.writeJSON(w, r, http.StatusOK, s.Snapshot())
		return nil
	})
}

// startDraft starts a new drafting session for the browser session, replacing an earlier one.
func (app *application) startDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if previous := app.sessionManager.GetString(ctx, string(draftIDSessionKey)); previous != "" {
		app.drafts.Remove(previous)
	}
	if err := app.sessionManager.RenewToken(ctx); err != nil {
		app.serverError(w, r, errors.Wrap(err, "renew session token"))
		return
	}
	s := app.drafts.NewSession(ctx)
	app.sessionManager.Put(ctx, string(draftIDSessionKey), s.ID())
	app.writeJSON(w, r, http.StatusCreated, s.Snapshot())
}

func (app *application) currentDraft(w http.ResponseWriter, r *http.Request) {
	app.mutateDraft(w, r, func(*drafting.Session) error { return nil })
}

func (app *application) selectLocale(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Locale string `json:"locale"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		app.errorResponse(w, r, err)
		return
	}
	app.mutateDraft(w, r, func(s *drafting.Session) error {
		return s.SelectLocale(strings.TrimSpace(req.Locale))
	})
}

func (app *application) selectInputMode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode drafting.InputMode `json:"mode"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		app.errorResponse(w, r, err)
		return
	}
	app.mutateDraft(w, r, func(s *drafting.Session) error {
		return s.SelectInputMode(req.Mode)
	})
}

func (app *application) backToInputMode(w http.ResponseWriter, r *http.Request) {
	app.mutateDraft(w, r, (*drafting.Session).BackToInputMode)
}

type promptResponse struct {
	drafting.Prompt
	// AudioData is the base64 encoded synthesized question. It's empty when the client should speak the question.
	AudioData string `json:"audioData,omitempty"`
}

func (app *application) repeatQuestion(w http.ResponseWriter, r *http.Request) {
	app.withDraft(w, r, func(w http.ResponseWriter, r *http.Request, s *drafting.Session) error {
		prompt := s.RepeatQuestion(r.Context())
		resp := promptResponse{Prompt: prompt, AudioData: ""}
		if len(prompt.Audio.Data) > 0 {
			resp.AudioData = base64.StdEncoding.EncodeToString(prompt.Audio.Data)
		}
		app.writeJSON(w, r, http.StatusOK, resp)
		return nil
	})
}

func (app *application) startListening(w http.ResponseWriter, r *http.Request) {
	app.mutateDraft(w, r, (*drafting.Session).StartListening)
}

func (app *application) stopListening(w http.ResponseWriter, r *http.Request) {
	app.mutateDraft(w, r, (*drafting.Session).StopListening)
}

// observeSpeech receives a result of the browser's speech recognition.
func (app *application) observeSpeech(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Transcript string `json:"transcript"`
		Final      bool   `json:"final"`
		// Error is the recognizer's error code, e.g. "no-speech" or "not-allowed".
		Error string `json:"error"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		app.errorResponse(w, r, err)
		return
	}
	result := speech.Result{Transcript: req.Transcript, Final: req.Final, Err: nil}
	if req.Error != "" {
		result.Err = speech.Classify(req.Error)
	}
	app.mutateDraft(w, r, func(s *drafting.Session) error {
		return s.ObserveSpeech(result)
	})
}

// recognizeAudio runs server-side recognition over a recording in the request body.
func (app *application) recognizeAudio(w http.ResponseWriter, r *http.Request) {
	audio, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxAudioBody))
	if err != nil {
		app.errorResponse(w, r, errors.Wrap(errors.Join(errBadRequest, err), "read audio"))
		return
	}
	app.mutateDraft(w, r, func(s *drafting.Session) error {
		return s.Listen(r.Context(), audio)
	})
}

func (app *application) setUtterance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		app.errorResponse(w, r, err)
		return
	}
	app.mutateDraft(w, r, func(s *drafting.Session) error {
		return s.SetPending(req.Text)
	})
}

type sendResponse struct {
	Result   drafting.SendResult `json:"result"`
	Snapshot drafting.Snapshot   `json:"snapshot"`
}

func (app *application) sendUtterance(w http.ResponseWriter, r *http.Request) {
	app.withDraft(w, r, func(w http.ResponseWriter, r *http.Request, s *drafting.Session) error {
		result, err := s.Send(r.Context())
		if err != nil {
			return err
		}
		app.writeJSON(w, r, http.StatusOK, sendResponse{Result: result, Snapshot: s.Snapshot()})
		return nil
	})
}

func (app *application) nextQuestion(w http.ResponseWriter, r *http.Request) {
	app.mutateDraft(w, r, func(s *drafting.Session) error {
		_, err := s.NextQuestion()
		return err
	})
}

type extractResponse struct {
	drafting.ExtractAllResult
	Snapshot drafting.Snapshot `json:"snapshot"`
}

func (app *application) extractAll(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		app.errorResponse(w, r, err)
		return
	}
	app.withDraft(w, r, func(w http.ResponseWriter, r *http.Request, s *drafting.Session) error {
		result, err := s.ExtractAll(r.Context(), req.Text)
		if err != nil {
			return err
		}
		app.writeJSON(w, r, http.StatusOK, extractResponse{ExtractAllResult: result, Snapshot: s.Snapshot()})
		return nil
	})
}

type updateFieldResponse struct {
	Key      fields.Key        `json:"key"`
	Value    string            `json:"value"`
	Snapshot drafting.Snapshot `json:"snapshot"`
}

func (app *application) updateField(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value string `json:"value"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		app.errorResponse(w, r, err)
		return
	}
	key := fields.Key(r.PathValue("key"))
	app.withDraft(w, r, func(w http.ResponseWriter, r *http.Request, s *drafting.Session) error {
		value, err := s.UpdateField(r.Context(), key, req.Value)
		if err != nil {
			return err
		}
		app.writeJSON(w, r, http.StatusOK, updateFieldResponse{Key: key, Value: value, Snapshot: s.Snapshot()})
		return nil
	})
}

func (app *application) saveDraft(w http.ResponseWriter, r *http.Request) {
	app.withDraft(w, r, func(w http.ResponseWriter, r *http.Request, s *drafting.Session) error {
		fir, err := s.SaveDraft(r.Context())
		if err != nil {
			return err
		}
		app.writeJSON(w, r, http.StatusOK, fir)
		return nil
	})
}

func (app *application) submitDraft(w http.ResponseWriter, r *http.Request) {
	app.withDraft(w, r, func(w http.ResponseWriter, r *http.Request, s *drafting.Session) error {
		fir, err := s.Submit(r.Context())
		if err != nil {
			return err
		}
		app.logger.LogAttrs(r.Context(), slog.LevelInfo, "FIR submitted", slog.String("case_id", fir.CaseID))
		app.writeJSON(w, r, http.StatusOK, fir)
		return nil
	})
}
