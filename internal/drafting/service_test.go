package drafting_test

import (
	"context"
	"github.com/myrjola/smartcop/internal/drafting"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/extract"
	"github.com/myrjola/smartcop/internal/fields"
	"github.com/myrjola/smartcop/internal/repositories"
	"github.com/myrjola/smartcop/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"io"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestService(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{mu: sync.Mutex{}, now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	store := &fakeStore{mu: sync.Mutex{}, saved: nil, err: nil}
	service := drafting.NewService(drafting.Dependencies{
		Engine:      extract.New(fields.Default()),
		Translator:  &fakeTranslator{mu: sync.Mutex{}, dict: nil, calls: 0, gate: nil},
		Store:       store,
		Journal:     nil,
		Recognizer:  nil,
		Synthesizer: nil,
		Logger:      testhelpers.NewLogger(io.Discard),
		Now:         clock.Now,
	}, 30*time.Minute)

	idle := service.NewSession(ctx)
	active := service.NewSession(ctx)
	require.NotEqual(t, idle.ID(), active.ID())

	got, err := service.Session(active.ID())
	require.NoError(t, err)
	require.Same(t, active, got)
	snapshot := got.Snapshot()
	require.Equal(t, drafting.StepSelectLocale, snapshot.Step)
	require.Equal(t, "en", snapshot.Record.Locale)
	require.Equal(t, fields.FullName, snapshot.CurrentField)

	_, err = service.Session("missing")
	require.ErrorIs(t, err, drafting.ErrSessionNotFound)

	t.Run("evicts idle sessions", func(t *testing.T) {
		clock.Advance(20 * time.Minute)
		require.NoError(t, active.SelectLocale("hi"))
		require.Zero(t, service.Evict(ctx))

		clock.Advance(20 * time.Minute)
		require.Equal(t, 1, service.Evict(ctx))
		_, err = service.Session(idle.ID())
		require.ErrorIs(t, err, drafting.ErrSessionNotFound)
		_, err = service.Session(active.ID())
		require.NoError(t, err)
	})

	t.Run("remove", func(t *testing.T) {
		service.Remove(active.ID())
		_, err = service.Session(active.ID())
		require.ErrorIs(t, err, drafting.ErrSessionNotFound)
	})

	t.Run("list", func(t *testing.T) {
		s := service.NewSession(ctx)
		_, err = s.SaveDraft(ctx)
		require.NoError(t, err)
		firs, listErr := service.List(ctx, repositories.ListOptions{Search: "", Limit: 0})
		require.NoError(t, listErr)
		require.Len(t, firs, 1)

		store.mu.Lock()
		store.err = errors.New("database is locked")
		store.mu.Unlock()
		_, listErr = service.List(ctx, repositories.ListOptions{Search: "", Limit: 0})
		require.ErrorIs(t, listErr, drafting.ErrPersistence)
	})
}

func TestSession_RepeatQuestion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := f.service.NewSession(ctx)
	require.NoError(t, s.SelectLocale("hi"))

	prompt := s.RepeatQuestion(ctx)
	require.Equal(t, fields.FullName, prompt.Key)
	require.Equal(t, "पूरा नाम", prompt.Label)
	require.Equal(t, "आपका पूरा नाम क्या है?", prompt.Question)
	require.True(t, prompt.Audio.Fallback, "no synthesizer configured")
	require.Equal(t, "hi-IN", prompt.Audio.Lang)
	require.Equal(t, 0, s.Snapshot().FieldIndex)
}
