package drafting

import (
	"context"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/extract"
	"github.com/myrjola/smartcop/internal/fields"
	"github.com/myrjola/smartcop/internal/locale"
	"github.com/myrjola/smartcop/internal/logging"
	"github.com/myrjola/smartcop/internal/models"
	"github.com/myrjola/smartcop/internal/repositories"
	"github.com/myrjola/smartcop/internal/speech"
	"github.com/myrjola/smartcop/internal/translate"
	"log/slog"
	"strings"
	"sync"
	"time"
)

var (
	ErrInvalidTransition = errors.NewSentinel("invalid transition")
	ErrSubmitted         = errors.NewSentinel("record already submitted")
	ErrSessionNotFound   = errors.NewSentinel("session not found")
	// ErrPersistence wraps store failures. The record is left unchanged so that saving can be retried.
	ErrPersistence = errors.NewSentinel("persistence failure")
)

// Step is the top-level state of a session.
type Step string

const (
	StepSelectLocale    Step = "selectLocale"
	StepSelectInputMode Step = "selectInputMode"
	StepCapturing       Step = "capturing"
)

// CaptureState is the sub-state of [StepCapturing].
type CaptureState string

const (
	AwaitingUtterance   CaptureState = "awaitingUtterance"
	Listening           CaptureState = "listening"
	HasPendingUtterance CaptureState = "hasPendingUtterance"
)

type InputMode string

const (
	ModeVoice InputMode = "voice"
	ModeText  InputMode = "text"
)

// Translator renders a value in another locale. It never fails; see [translate.Relay].
type Translator interface {
	Translate(ctx context.Context, text, source, target string) translate.Translation
}

// Store persists FIRs.
type Store interface {
	// Save appends a snapshot of fir and assigns fir.CaseID when it's empty.
	Save(ctx context.Context, fir *models.FIR) (int64, error)
	List(ctx context.Context, opts repositories.ListOptions) ([]models.FIR, error)
}

// Journal records timeline activities.
type Journal interface {
	Add(ctx context.Context, activity *models.Activity) error
}

// Session is a guided drafting session for one record. It's safe for concurrent use.
type Session struct {
	id         string
	engine     *extract.Engine
	translator Translator
	store      Store
	journal    Journal
	recognizer speech.Recognizer
	synth      speech.Synthesizer
	logger     *slog.Logger
	now        func() time.Time

	mu         sync.Mutex
	record     Record
	step       Step
	mode       InputMode
	capture    CaptureState
	index      int
	pending    string
	interim    string
	speechErr  *speech.ProviderError
	lastActive time.Time

	// generations counts local writes per key so that only the latest write's translation is applied.
	generations map[fields.Key]uint64
	inflight    int
	idle        chan struct{}
}

// Snapshot is a consistent copy of the session state.
type Snapshot struct {
	ID                  string                `json:"id"`
	Step                Step                  `json:"step"`
	Mode                InputMode             `json:"mode,omitempty"`
	Capture             CaptureState          `json:"capture,omitempty"`
	FieldIndex          int                   `json:"fieldIndex"`
	CurrentField        fields.Key            `json:"currentField"`
	Pending             string                `json:"pending"`
	Interim             string                `json:"interim"`
	Listening           bool                  `json:"listening"`
	SpeechError         *speech.ProviderError `json:"speechError,omitempty"`
	PendingTranslations int                   `json:"pendingTranslations"`
	Record              Record                `json:"record"`
}

func newSession(id string, deps Dependencies, now time.Time) *Session {
	idle := make(chan struct{})
	close(idle)
	registry := deps.Engine.Registry()
	return &Session{
		id:          id,
		engine:      deps.Engine,
		translator:  deps.Translator,
		store:       deps.Store,
		journal:     deps.Journal,
		recognizer:  deps.Recognizer,
		synth:       deps.Synthesizer,
		logger:      deps.Logger.With("source", "DraftingSession", slog.String("draft_id", id)),
		now:         deps.Now,
		mu:          sync.Mutex{},
		record:      newRecord(registry.Keys(), locale.English, now),
		step:        StepSelectLocale,
		mode:        "",
		capture:     "",
		index:       0,
		pending:     "",
		interim:     "",
		speechErr:   nil,
		lastActive:  now,
		generations: make(map[fields.Key]uint64, registry.Len()),
		inflight:    0,
		idle:        idle,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		ID:                  s.id,
		Step:                s.step,
		Mode:                s.mode,
		Capture:             s.capture,
		FieldIndex:          s.index,
		CurrentField:        s.engine.Registry().At(s.index).Key,
		Pending:             s.pending,
		Interim:             s.interim,
		Listening:           s.capture == Listening,
		SpeechError:         s.speechErr,
		PendingTranslations: s.inflight,
		Record:              s.record.clone(),
	}
}

// Record returns a copy of the record.
func (s *Session) Record() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.clone()
}

func (s *Session) touchLocked() {
	s.lastActive = s.now()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) transitionError(op string) error {
	return errors.Wrap(ErrInvalidTransition, op, slog.String("step", string(s.step)),
		slog.String("capture", string(s.capture)))
}

func (s *Session) checkDraftLocked() error {
	if s.record.Status == models.FIRStatusSubmitted {
		return errors.Wrap(ErrSubmitted, "check status", slog.String("case_id", s.record.CaseID))
	}
	return nil
}

// SelectLocale sets the working locale. It's allowed until capturing starts.
func (s *Session) SelectLocale(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if err := s.checkDraftLocked(); err != nil {
		return err
	}
	if s.step == StepCapturing {
		return s.transitionError("select locale")
	}
	if !locale.Supported(code) {
		return errors.Wrap(ErrInvalidTransition, "unsupported locale", slog.String("locale", code))
	}
	s.record.Locale = code
	s.step = StepSelectInputMode
	return nil
}

// SelectInputMode starts capturing in voice or text mode.
func (s *Session) SelectInputMode(mode InputMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if err := s.checkDraftLocked(); err != nil {
		return err
	}
	if s.step != StepSelectInputMode {
		return s.transitionError("select input mode")
	}
	if mode != ModeVoice && mode != ModeText {
		return errors.Wrap(ErrInvalidTransition, "unknown input mode", slog.String("mode", string(mode)))
	}
	s.mode = mode
	s.step = StepCapturing
	s.capture = AwaitingUtterance
	if s.pending != "" {
		s.capture = HasPendingUtterance
	}
	return nil
}

// BackToInputMode returns to input mode selection. Captured values and the pending utterance are kept.
func (s *Session) BackToInputMode() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if s.step != StepCapturing {
		return s.transitionError("back to input mode")
	}
	s.interim = ""
	s.step = StepSelectInputMode
	s.capture = ""
	return nil
}

// StartListening enters [Listening] in voice mode.
func (s *Session) StartListening() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if err := s.checkDraftLocked(); err != nil {
		return err
	}
	if s.step != StepCapturing || s.mode != ModeVoice || s.capture == Listening {
		return s.transitionError("start listening")
	}
	s.capture = Listening
	s.interim = ""
	s.speechErr = nil
	return nil
}

// ObserveSpeech applies a recognition result. Interim results are only displayed. A final result is appended to the
// pending utterance and ends listening.
//
// Transient recognizer errors keep listening. Other errors end listening and are returned.
func (s *Session) ObserveSpeech(result speech.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if s.capture != Listening {
		return s.transitionError("observe speech")
	}
	if result.Err != nil {
		s.speechErr = result.Err
		if result.Err.Retryable() {
			s.interim = ""
			return nil
		}
		s.stopListeningLocked()
		return result.Err
	}
	if !result.Final {
		s.interim = result.Transcript
		return nil
	}
	if transcript := strings.TrimSpace(result.Transcript); transcript != "" {
		s.pending = strings.TrimSpace(s.pending + " " + transcript)
	}
	s.stopListeningLocked()
	return nil
}

// StopListening ends listening. The interim transcript is discarded.
func (s *Session) StopListening() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if s.capture != Listening {
		return s.transitionError("stop listening")
	}
	s.stopListeningLocked()
	return nil
}

func (s *Session) stopListeningLocked() {
	s.interim = ""
	s.capture = AwaitingUtterance
	if s.pending != "" {
		s.capture = HasPendingUtterance
	}
}

// Listen runs server-side recognition over a recording and feeds the results to the session.
func (s *Session) Listen(ctx context.Context, audio []byte) error {
	if s.recognizer == nil {
		return errors.Wrap(&speech.ProviderError{Kind: speech.KindUnavailable, Code: "no-recognizer"}, "listen")
	}
	if err := s.StartListening(); err != nil {
		return err
	}
	s.mu.Lock()
	loc := s.record.Locale
	s.mu.Unlock()

	results, err := s.recognizer.Recognize(ctx, audio, loc)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "speech recognition failed", errors.SlogError(err))
		err = s.ObserveSpeech(speech.Result{Transcript: "", Final: true, Err: speech.FromError(err)})
	} else {
		for result := range results {
			if err = s.ObserveSpeech(result); err != nil {
				break
			}
		}
	}
	// A recording is recognized once, so listening ends even without a final result.
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.capture == Listening {
		s.stopListeningLocked()
	}
	return err
}

// SetPending replaces the pending utterance, e.g. with typed text or an edited transcript.
func (s *Session) SetPending(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if err := s.checkDraftLocked(); err != nil {
		return err
	}
	if s.step != StepCapturing || s.capture == Listening {
		return s.transitionError("set pending utterance")
	}
	s.pending = strings.TrimSpace(text)
	s.capture = AwaitingUtterance
	if s.pending != "" {
		s.capture = HasPendingUtterance
	}
	return nil
}

// SendResult describes a committed utterance.
type SendResult struct {
	Key   fields.Key `json:"key"`
	Value string     `json:"value"`
	// Next is the field now being asked for.
	Next fields.Key `json:"next"`
}

// Send extracts a value for the current field from the pending utterance, commits it and moves to the next field.
//
// When nothing can be extracted [extract.ErrNoMatch] is returned and the field, the index and the pending utterance
// are left as they were.
func (s *Session) Send(ctx context.Context) (SendResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if err := s.checkDraftLocked(); err != nil {
		return SendResult{}, err //nolint:exhaustruct // zero on error
	}
	if s.step != StepCapturing || s.capture != HasPendingUtterance {
		return SendResult{}, s.transitionError("send") //nolint:exhaustruct // zero on error
	}
	registry := s.engine.Registry()
	key := registry.At(s.index).Key
	value, err := s.engine.ExtractField(s.pending, key)
	if err != nil {
		return SendResult{}, errors.Wrap(err, "extract field", slog.String("field", string(key))) //nolint:exhaustruct // zero on error
	}
	s.commitLocked(ctx, key, value)
	s.pending = ""
	s.capture = AwaitingUtterance
	s.advanceLocked()
	return SendResult{Key: key, Value: value, Next: registry.At(s.index).Key}, nil
}

// advanceLocked moves to the next field. The index never passes the last field.
func (s *Session) advanceLocked() {
	s.index = min(s.index+1, s.engine.Registry().Len()-1)
}

// NextQuestion skips to the next field.
func (s *Session) NextQuestion() (fields.Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if err := s.checkDraftLocked(); err != nil {
		return "", err
	}
	if s.step != StepCapturing {
		return "", s.transitionError("next question")
	}
	s.advanceLocked()
	return s.engine.Registry().At(s.index).Key, nil
}

// Prompt asks for a field.
type Prompt struct {
	Key      fields.Key   `json:"key"`
	Label    string       `json:"label"`
	Question string       `json:"question"`
	Audio    speech.Audio `json:"audio"`
}

// RepeatQuestion prompts for the current field again. It doesn't change the session state.
func (s *Session) RepeatQuestion(ctx context.Context) Prompt {
	s.mu.Lock()
	s.touchLocked()
	key := s.engine.Registry().At(s.index).Key
	loc := s.record.Locale
	s.mu.Unlock()

	registry := s.engine.Registry()
	question := registry.Question(key, loc)
	audio := speech.Local(question, loc)
	if s.synth != nil {
		var err error
		if audio, err = s.synth.Synthesize(ctx, question, loc); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "prompt synthesis failed", errors.SlogError(err))
			audio = speech.Local(question, loc)
		}
	}
	return Prompt{Key: key, Label: registry.Label(key, loc), Question: question, Audio: audio}
}

// ExtractAllResult reports a full-text extraction.
type ExtractAllResult struct {
	extract.Extraction
	Message string `json:"message"`
}

// ExtractAll fills every field that has a trigger phrase in text. Each matched field is translated independently.
func (s *Session) ExtractAll(ctx context.Context, text string) (ExtractAllResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if err := s.checkDraftLocked(); err != nil {
		return ExtractAllResult{}, err //nolint:exhaustruct // zero on error
	}
	extraction := s.engine.ExtractAll(text)
	// Commit in registry order for deterministic logs.
	for _, key := range s.engine.Registry().Keys() {
		if value, ok := extraction.Fields[key]; ok {
			s.commitLocked(ctx, key, value)
		}
	}
	message := locale.ExtractionSummary(s.record.Locale, extraction.Count)
	return ExtractAllResult{Extraction: extraction, Message: message}, nil
}

// UpdateField sets a single field from a direct edit. The value goes through targeted extraction, so "my name is
// ram" is stored as "Ram". A blank value is not an update.
func (s *Session) UpdateField(ctx context.Context, key fields.Key, value string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if !s.engine.Registry().Has(key) {
		return "", &fields.UnknownFieldError{Key: key}
	}
	if err := s.checkDraftLocked(); err != nil {
		return "", err
	}
	extracted, err := s.engine.ExtractField(value, key)
	if err != nil {
		return "", errors.Wrap(err, "extract field", slog.String("field", string(key)))
	}
	if extracted == "" {
		return s.record.LocalData[key], nil
	}
	s.commitLocked(ctx, key, extracted)
	return extracted, nil
}

// commitLocked writes the local value and starts its translation into the canonical locale.
//
// The local write happens before the canonical one. A translation result is dropped when a later write to the same
// key happened meanwhile or the record has been submitted.
func (s *Session) commitLocked(ctx context.Context, key fields.Key, value string) {
	s.generations[key]++
	generation := s.generations[key]
	s.record.LocalData[key] = value
	s.record.UpdatedAt = s.now()
	source := s.record.Locale

	if source == locale.English {
		s.record.CanonicalData[key] = value
		return
	}

	if s.inflight == 0 {
		s.idle = make(chan struct{})
	}
	s.inflight++
	// Translation outlives the request that triggered it.
	ctx = logging.WithAttrs(context.WithoutCancel(ctx), slog.String("field", string(key)))
	go func() {
		defer s.translationDone()
		translation := s.translator.Translate(ctx, value, source, locale.English)

		s.mu.Lock()
		defer s.mu.Unlock()
		switch {
		case s.record.Status == models.FIRStatusSubmitted:
			s.logger.LogAttrs(ctx, slog.LevelDebug, "dropping translation for submitted record")
		case s.generations[key] != generation:
			s.logger.LogAttrs(ctx, slog.LevelDebug, "dropping stale translation")
		default:
			s.record.CanonicalData[key] = translation.Text
		}
	}()
}

func (s *Session) translationDone() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	if s.inflight == 0 {
		close(s.idle)
	}
}

// Wait blocks until no translations are in flight.
func (s *Session) Wait(ctx context.Context) error {
	for {
		s.mu.Lock()
		if s.inflight == 0 {
			s.mu.Unlock()
			return nil
		}
		idle := s.idle
		s.mu.Unlock()
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "wait for translations")
		case <-idle:
		}
	}
}

// SaveDraft persists a snapshot of the draft once pending translations have settled.
func (s *Session) SaveDraft(ctx context.Context) (*models.FIR, error) {
	return s.persist(ctx, models.FIRStatusDraft)
}

// Submit persists the record as submitted. The record accepts no changes afterwards.
func (s *Session) Submit(ctx context.Context) (*models.FIR, error) {
	return s.persist(ctx, models.FIRStatusSubmitted)
}

func (s *Session) persist(ctx context.Context, status models.FIRStatus) (*models.FIR, error) {
	var err error
	for {
		if err = s.Wait(ctx); err != nil {
			return nil, err
		}
		s.mu.Lock()
		if s.inflight == 0 {
			break
		}
		// A write raced in between, wait for its translation too.
		s.mu.Unlock()
	}
	defer s.mu.Unlock()
	s.touchLocked()
	if err = s.checkDraftLocked(); err != nil {
		return nil, err
	}

	fir := s.record.toFIR(status)
	if _, err = s.store.Save(ctx, fir); err != nil {
		return nil, errors.Wrap(errors.Join(ErrPersistence, err), "save FIR", slog.String("status", string(status)))
	}
	s.record.CaseID = fir.CaseID
	s.record.Status = status
	s.logger.LogAttrs(ctx, slog.LevelInfo, "persisted FIR",
		slog.String("case_id", fir.CaseID), slog.String("status", string(status)))

	if s.journal != nil {
		title := "FIR draft saved"
		if status == models.FIRStatusSubmitted {
			title = "FIR submitted"
		}
		activity := &models.Activity{
			ID:     "",
			Kind:   models.ActivityKindFIR,
			Title:  title,
			CaseID: fir.CaseID,
			Details: models.Details{
				"status":    string(status),
				"language":  locale.Name(fir.Language),
				"completed": fir.Completed(),
				"total":     s.engine.Registry().Len(),
			},
			CreatedAt: s.now(),
		}
		if err = s.journal.Add(ctx, activity); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to record activity", errors.SlogError(err))
		}
	}
	return fir, nil
}
