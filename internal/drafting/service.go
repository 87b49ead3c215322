package drafting

import (
	"context"
	"github.com/google/uuid"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/extract"
	"github.com/myrjola/smartcop/internal/models"
	"github.com/myrjola/smartcop/internal/repositories"
	"github.com/myrjola/smartcop/internal/speech"
	"log/slog"
	"sync"
	"time"
)

// Dependencies are the collaborators shared by all sessions.
type Dependencies struct {
	Engine     *extract.Engine
	Translator Translator
	Store      Store
	// Journal, Recognizer and Synthesizer are optional.
	Journal     Journal
	Recognizer  speech.Recognizer
	Synthesizer speech.Synthesizer
	Logger      *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Service owns the active drafting sessions.
type Service struct {
	deps   Dependencies
	ttl    time.Duration
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewService creates a service evicting sessions idle for longer than ttl. A non-positive ttl keeps sessions forever.
func NewService(deps Dependencies, ttl time.Duration) *Service {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Service{
		deps:     deps,
		ttl:      ttl,
		logger:   deps.Logger.With("source", "DraftingService"),
		mu:       sync.Mutex{},
		sessions: map[string]*Session{},
	}
}

// NewSession starts a session for a new empty record.
func (s *Service) NewSession(ctx context.Context) *Session {
	id := uuid.NewString()
	session := newSession(id, s.deps, s.deps.Now())
	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()
	s.logger.LogAttrs(ctx, slog.LevelInfo, "started drafting session", slog.String("draft_id", id))
	return session
}

// Session returns the session with id.
func (s *Service) Session(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, errors.Wrap(ErrSessionNotFound, "lookup session", slog.String("draft_id", id))
	}
	return session, nil
}

// Remove forgets the session with id.
func (s *Service) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// List returns persisted FIRs, most recent first.
func (s *Service) List(ctx context.Context, opts repositories.ListOptions) ([]models.FIR, error) {
	firs, err := s.deps.Store.List(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(errors.Join(ErrPersistence, err), "list FIRs")
	}
	return firs, nil
}

// Evict removes sessions idle since before now minus the TTL and returns how many were removed.
func (s *Service) Evict(ctx context.Context) int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.deps.Now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for id, session := range s.sessions {
		if session.idleSince().Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "evicted idle sessions", slog.Int("count", evicted))
	}
	return evicted
}

// StartJanitor evicts idle sessions periodically until ctx is done.
func (s *Service) StartJanitor(ctx context.Context) {
	if s.ttl <= 0 {
		return
	}
	const checksPerTTL = 4
	ticker := time.NewTicker(s.ttl / checksPerTTL)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Evict(ctx)
		}
	}
}
