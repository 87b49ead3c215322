package repositories_test

import (
	"context"
	"github.com/myrjola/smartcop/internal/models"
	"github.com/myrjola/smartcop/internal/repositories"
	"github.com/myrjola/smartcop/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
	"time"
)

func TestActivityRepository(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewActivityRepository(newTestDB(t), testhelpers.NewLogger(io.Discard))

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, title := range []string{"FIR draft saved", "FIR submitted", "FIR draft saved"} {
		activity := &models.Activity{
			ID:        "",
			Kind:      models.ActivityKindFIR,
			Title:     title,
			CaseID:    "CASE-2026-000001",
			Details:   models.Details{"status": "draft", "completed": i},
			CreatedAt: start.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Add(ctx, activity))
		require.NotEmpty(t, activity.ID)
	}

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "FIR draft saved", recent[0].Title)
	require.Equal(t, "FIR submitted", recent[1].Title)
	require.True(t, recent[0].CreatedAt.After(recent[1].CreatedAt))
	require.InDelta(t, 2, recent[0].Details["completed"], 0)
}
