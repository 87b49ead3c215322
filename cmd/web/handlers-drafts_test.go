package main

import (
	"bufio"
	"context"
	"github.com/myrjola/smartcop/internal/drafting"
	"github.com/myrjola/smartcop/internal/fields"
	"github.com/myrjola/smartcop/internal/models"
	"github.com/stretchr/testify/require"
	"net/http"
	"strings"
	"testing"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func TestDraftingFlow(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t)
	client := server.Client()

	var snapshot drafting.Snapshot
	status, err := client.JSON(ctx, http.MethodPost, "/api/drafts", nil, &snapshot)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, drafting.StepSelectLocale, snapshot.Step)
	require.Len(t, snapshot.Record.LocalData, 10)

	status, err = client.JSON(ctx, http.MethodPost, "/api/drafts/current/locale", map[string]string{"locale": "hi"},
		&snapshot)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "hi", snapshot.Record.Locale)

	status, err = client.JSON(ctx, http.MethodPost, "/api/drafts/current/mode", map[string]string{"mode": "text"},
		&snapshot)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, drafting.StepCapturing, snapshot.Step)

	var prompt promptResponse
	status, err = client.JSON(ctx, http.MethodGet, "/api/drafts/current/question", nil, &prompt)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, fields.FullName, prompt.Key)
	require.Equal(t, "आपका पूरा नाम क्या है?", prompt.Question)
	require.Equal(t, "openai", prompt.Audio.Provider)
	require.NotEmpty(t, prompt.AudioData)

	status, err = client.JSON(ctx, http.MethodPost, "/api/drafts/current/utterance",
		map[string]string{"text": "मेरा नाम राम है"}, &snapshot)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, drafting.HasPendingUtterance, snapshot.Capture)

	var sent sendResponse
	status, err = client.JSON(ctx, http.MethodPost, "/api/drafts/current/send", nil, &sent)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, drafting.SendResult{Key: fields.FullName, Value: "राम", Next: fields.Age}, sent.Result)
	require.Equal(t, 1, sent.Snapshot.FieldIndex)

	var fir models.FIR
	status, err = client.JSON(ctx, http.MethodPost, "/api/drafts/current/save", nil, &fir)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, models.FIRStatusDraft, fir.Status)
	require.Equal(t, "राम", fir.LocalData[fields.FullName])
	require.Equal(t, "Ram", fir.CanonicalData[fields.FullName])
	require.True(t, strings.HasPrefix(fir.CaseID, "CASE-"))

	var firs []models.FIR
	status, err = client.JSON(ctx, http.MethodGet, "/api/firs?q=ram", nil, &firs)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, firs, 1)

	var submitted models.FIR
	status, err = client.JSON(ctx, http.MethodPost, "/api/drafts/current/submit", nil, &submitted)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, models.FIRStatusSubmitted, submitted.Status)
	require.Equal(t, fir.CaseID, submitted.CaseID)

	var errResp errorResponse
	status, err = client.JSON(ctx, http.MethodPut, "/api/drafts/current/fields/age", map[string]string{"value": "30"},
		&errResp)
	require.NoError(t, err)
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, "submitted", errResp.Code)

	var latest models.FIR
	status, err = client.JSON(ctx, http.MethodGet, "/api/firs/"+fir.CaseID, nil, &latest)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, models.FIRStatusSubmitted, latest.Status)

	var activities []models.Activity
	status, err = client.JSON(ctx, http.MethodGet, "/api/activities", nil, &activities)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, activities, 2)
	require.Equal(t, "FIR submitted", activities[0].Title)
}

func TestDraftErrors(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t)
	client := server.Client()

	var errResp errorResponse
	status, err := client.JSON(ctx, http.MethodGet, "/api/drafts/current", nil, &errResp)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, status, "no draft started")

	status, err = client.JSON(ctx, http.MethodPost, "/api/drafts", nil, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, status)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"unsupported locale", http.MethodPost, "/api/drafts/current/locale", map[string]string{"locale": "xx"},
			http.StatusConflict, "invalid-transition"},
		{"unknown body field", http.MethodPost, "/api/drafts/current/locale", map[string]string{"language": "hi"},
			http.StatusBadRequest, "bad-request"},
		{"send before capturing", http.MethodPost, "/api/drafts/current/send", nil,
			http.StatusConflict, "invalid-transition"},
		{"unknown field", http.MethodPut, "/api/drafts/current/fields/shoeSize", map[string]string{"value": "42"},
			http.StatusBadRequest, "unknown-field"},
		{"no match", http.MethodPut, "/api/drafts/current/fields/address", map[string]string{"value": "my the"},
			http.StatusUnprocessableEntity, "no-match"},
		{"unknown FIR", http.MethodGet, "/api/firs/CASE-1999-000000", nil,
			http.StatusNotFound, "not-found"},
		{"empty chat message", http.MethodPost, "/api/chat", map[string]string{"message": " "},
			http.StatusBadRequest, "bad-request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp errorResponse
			status, err = client.JSON(ctx, tt.method, tt.path, tt.body, &resp)
			require.NoError(t, err)
			require.Equal(t, tt.status, status)
			require.Equal(t, tt.code, resp.Code)
		})
	}
}

func TestCSRF(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, server.URL()+"/api/drafts", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestExtractAndVoice(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t)
	client := server.Client()

	status, err := client.JSON(ctx, http.MethodPost, "/api/drafts", nil, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, status)
	status, err = client.JSON(ctx, http.MethodPost, "/api/drafts/current/locale", map[string]string{"locale": "en"}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)

	var extracted extractResponse
	status, err = client.JSON(ctx, http.MethodPost, "/api/drafts/current/extract",
		map[string]string{"text": "My name is ram kumar, age 45"}, &extracted)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Successfully extracted information for 2 field(s)", extracted.Message)
	require.Equal(t, "Ram Kumar", extracted.Snapshot.Record.CanonicalData[fields.FullName])
	require.Equal(t, "45", extracted.Snapshot.Record.CanonicalData[fields.Age])

	status, err = client.JSON(ctx, http.MethodPost, "/api/drafts/current/extract",
		map[string]string{"text": "please help"}, &extracted)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "No extractable information found", extracted.Message)

	var snapshot drafting.Snapshot
	status, err = client.JSON(ctx, http.MethodPost, "/api/drafts/current/mode", map[string]string{"mode": "voice"},
		&snapshot)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	status, err = client.JSON(ctx, http.MethodPost, "/api/drafts/current/listen/start", nil, &snapshot)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.True(t, snapshot.Listening)

	status, err = client.JSON(ctx, http.MethodPost, "/api/drafts/current/speech",
		map[string]any{"transcript": "", "final": false, "error": "no-speech"}, &snapshot)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.True(t, snapshot.Listening, "transient errors keep listening")

	var errResp errorResponse
	status, err = client.JSON(ctx, http.MethodPost, "/api/drafts/current/speech",
		map[string]any{"transcript": "", "final": false, "error": "not-allowed"}, &errResp)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "speech-permission-denied", errResp.Code)

	status, err = client.JSON(ctx, http.MethodPost, "/api/drafts/current/audio", nil, &errResp)
	require.NoError(t, err)
	require.Equal(t, http.StatusServiceUnavailable, status, "no recognizer configured")
	require.Equal(t, "speech-unavailable", errResp.Code)
}

func TestChat(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t)
	client := server.Client()

	var reply chatResponse
	status, err := client.JSON(ctx, http.MethodPost, "/api/chat", map[string]string{"message": "How do I file an FIR?"},
		&reply)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, chatAnswer, reply.Text)
	require.False(t, reply.Offline)
	require.Len(t, reply.History, 3)

	status, err = client.JSON(ctx, http.MethodPost, "/api/chat", map[string]string{"message": "And then?"}, &reply)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, reply.History, 5, "history is kept in the session")
}

func TestEvents(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t)

	resp, err := server.Client().Get(ctx, "/api/events")
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	events := bufio.NewScanner(resp.Body)
	require.True(t, events.Scan())
	require.Equal(t, ": connected", events.Text())
	require.True(t, events.Scan())
	require.Empty(t, events.Text())

	client := server.Client()
	status, err := client.JSON(ctx, http.MethodPost, "/api/drafts", nil, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, status)
	status, err = client.JSON(ctx, http.MethodPost, "/api/drafts/current/save", nil, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)

	var lines []string
	for events.Scan() && events.Text() != "" {
		lines = append(lines, events.Text())
	}
	require.Len(t, lines, 3)
	require.Equal(t, "id: 1", lines[0])
	require.Equal(t, "event: fir-saved", lines[1])
	require.True(t, strings.HasPrefix(lines[2], `data: {"id":1,"caseId":"CASE-`), lines[2])
}
