package repositories_test

import (
	"context"
	"github.com/myrjola/smartcop/internal/broker"
	"github.com/myrjola/smartcop/internal/fields"
	"github.com/myrjola/smartcop/internal/models"
	"github.com/myrjola/smartcop/internal/repositories"
	"github.com/myrjola/smartcop/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"io"
	"regexp"
	"testing"
	"time"
)

func newFIR(name, incidentType string) *models.FIR {
	now := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	local := models.FieldValues{}
	canonical := models.FieldValues{}
	for _, key := range fields.Default().Keys() {
		local[key] = ""
		canonical[key] = ""
	}
	local[fields.FullName], canonical[fields.FullName] = name, name
	local[fields.IncidentType], canonical[fields.IncidentType] = incidentType, incidentType
	return &models.FIR{
		ID:            0,
		CaseID:        "",
		Status:        models.FIRStatusDraft,
		Language:      "en",
		LocalData:     local,
		CanonicalData: canonical,
		CreatedAt:     now,
		UpdatedAt:     now,
		SavedAt:       time.Time{},
	}
}

func TestFIRRepository_Save(t *testing.T) {
	ctx := context.Background()
	events := broker.NewBroker[models.FIR](1)
	go events.Start()
	t.Cleanup(events.Stop)
	subscription := events.Subscribe()
	repo := repositories.NewFIRRepository(newTestDB(t), events, testhelpers.NewLogger(io.Discard))

	fir := newFIR("Ram Kumar", "Theft")
	id, err := repo.Save(ctx, fir)
	require.NoError(t, err)
	require.Equal(t, id, fir.ID)
	require.Regexp(t, regexp.MustCompile(`^CASE-\d{4}-\d{6}$`), fir.CaseID)
	require.False(t, fir.SavedAt.IsZero())

	published := <-subscription
	require.Equal(t, fir.CaseID, published.CaseID)

	// Saving again keeps the case ID and appends a new snapshot.
	caseID := fir.CaseID
	fir.Status = models.FIRStatusSubmitted
	secondID, err := repo.Save(ctx, fir)
	require.NoError(t, err)
	require.NotEqual(t, id, secondID)
	require.Equal(t, caseID, fir.CaseID)

	got, err := repo.Get(ctx, caseID)
	require.NoError(t, err)
	require.Equal(t, secondID, got.ID)
	require.Equal(t, models.FIRStatusSubmitted, got.Status)
	require.Equal(t, fir.LocalData, got.LocalData)
	require.Len(t, got.CanonicalData, fields.Default().Len())
	require.True(t, fir.CreatedAt.Equal(got.CreatedAt), "created at %v != %v", fir.CreatedAt, got.CreatedAt)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = repo.Get(ctx, "CASE-1999-000000")
	require.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestFIRRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewFIRRepository(newTestDB(t), nil, testhelpers.NewLogger(io.Discard))
	for _, f := range []*models.FIR{
		newFIR("Ram Kumar", "Theft"),
		newFIR("Sita Devi", "Assault"),
		newFIR("Mohan Das", "Vehicle theft"),
	} {
		_, err := repo.Save(ctx, f)
		require.NoError(t, err)
	}

	tests := []struct {
		name  string
		opts  repositories.ListOptions
		names []string
	}{
		{"all most recent first", repositories.ListOptions{Search: "", Limit: 0}, []string{"Mohan Das", "Sita Devi", "Ram Kumar"}},
		{"limit", repositories.ListOptions{Search: "", Limit: 1}, []string{"Mohan Das"}},
		{"name case-insensitive", repositories.ListOptions{Search: "sita", Limit: 0}, []string{"Sita Devi"}},
		{"incident type", repositories.ListOptions{Search: "theft", Limit: 0}, []string{"Mohan Das", "Ram Kumar"}},
		{"case id prefix", repositories.ListOptions{Search: "CASE-", Limit: 0}, []string{"Mohan Das", "Sita Devi", "Ram Kumar"}},
		{"no match", repositories.ListOptions{Search: "burglary", Limit: 0}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			firs, err := repo.List(ctx, tt.opts)
			require.NoError(t, err)
			got := []string{}
			for _, f := range firs {
				got = append(got, f.CanonicalData[fields.FullName])
			}
			require.Equal(t, tt.names, got)
		})
	}
}
