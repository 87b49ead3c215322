package repositories

import (
	"context"
	"database/sql"
	"github.com/myrjola/smartcop/internal/broker"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/models"
	"github.com/myrjola/smartcop/internal/random"
	"github.com/myrjola/smartcop/internal/sqlite"
	"log/slog"
	"strings"
	"time"
)

var ErrNotFound = errors.NewSentinel("not found")

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// ListOptions filters [FIRRepository.List].
type ListOptions struct {
	// Search matches case ID, English name or English incident type, case-insensitively.
	Search string
	// Limit defaults to 50.
	Limit int
}

type FIRRepository struct {
	dbs    *sqlite.Database
	events *broker.Broker[models.FIR]
	logger *slog.Logger
}

// NewFIRRepository creates the repository. Saved FIRs are published to events when it's not nil.
func NewFIRRepository(dbs *sqlite.Database, events *broker.Broker[models.FIR], logger *slog.Logger) *FIRRepository {
	return &FIRRepository{
		dbs:    dbs,
		events: events,
		logger: logger.With("source", "FIRRepository"),
	}
}

// Save inserts a new row for fir. Saving is not idempotent: each call appends a snapshot.
//
// A case ID is assigned when fir doesn't have one yet and fir.ID, fir.SavedAt and fir.CaseID are updated on success.
func (r *FIRRepository) Save(ctx context.Context, fir *models.FIR) (int64, error) {
	var (
		err     error
		caseID  = fir.CaseID
		savedAt = time.Now().UTC()
		result  sql.Result
		id      int64
	)
	if caseID == "" {
		if caseID, err = random.CaseID(savedAt); err != nil {
			return 0, errors.Wrap(err, "generate case ID")
		}
	}
	stmt := `INSERT INTO fir_records
    (case_id, status, language, local_data, canonical_data, created_at, updated_at, saved_at)
VALUES (:case_id, :status, :language, :local_data, :canonical_data, :created_at, :updated_at, :saved_at)`
	params := []any{
		sql.Named("case_id", caseID),
		sql.Named("status", string(fir.Status)),
		sql.Named("language", fir.Language),
		sql.Named("local_data", fir.LocalData),
		sql.Named("canonical_data", fir.CanonicalData),
		sql.Named("created_at", fir.CreatedAt.UTC()),
		sql.Named("updated_at", fir.UpdatedAt.UTC()),
		sql.Named("saved_at", savedAt),
	}
	if result, err = r.dbs.ReadWrite.ExecContext(ctx, stmt, params...); err != nil {
		return 0, errors.Wrap(err, "insert FIR", slog.String("case_id", caseID))
	}
	if id, err = result.LastInsertId(); err != nil {
		return 0, errors.Wrap(err, "last insert ID")
	}
	fir.ID = id
	fir.CaseID = caseID
	fir.SavedAt = savedAt

	r.logger.LogAttrs(ctx, slog.LevelInfo, "saved FIR",
		slog.Int64("id", id), slog.String("case_id", caseID), slog.String("status", string(fir.Status)))
	if r.events != nil {
		r.events.Publish(*fir)
	}
	return id, nil
}

const firColumns = `id, case_id, status, language, local_data, canonical_data, created_at, updated_at, saved_at`

// List returns saved FIRs, most recent first.
func (r *FIRRepository) List(ctx context.Context, opts ListOptions) ([]models.FIR, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)
	search := strings.TrimSpace(opts.Search)

	stmt := `SELECT ` + firColumns + `
FROM fir_records
WHERE :search = ''
   OR case_id LIKE :pattern
   OR json_extract(canonical_data, '$.fullName') LIKE :pattern
   OR json_extract(canonical_data, '$.incidentType') LIKE :pattern
ORDER BY id DESC
LIMIT :limit`
	firs := []models.FIR{}
	if err := r.dbs.ReadOnly.SelectContext(ctx, &firs, stmt,
		sql.Named("search", search),
		sql.Named("pattern", "%"+search+"%"),
		sql.Named("limit", limit),
	); err != nil {
		return nil, errors.Wrap(err, "select FIRs")
	}
	return firs, nil
}

// Get returns the latest snapshot of the FIR with caseID.
func (r *FIRRepository) Get(ctx context.Context, caseID string) (*models.FIR, error) {
	var fir models.FIR
	stmt := `SELECT ` + firColumns + ` FROM fir_records WHERE case_id = ? ORDER BY id DESC LIMIT 1`
	if err := r.dbs.ReadOnly.GetContext(ctx, &fir, stmt, caseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrNotFound, "get FIR", slog.String("case_id", caseID))
		}
		return nil, errors.Wrap(err, "get FIR", slog.String("case_id", caseID))
	}
	return &fir, nil
}

// Count returns the number of saved snapshots.
func (r *FIRRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.dbs.ReadOnly.GetContext(ctx, &n, `SELECT COUNT(*) FROM fir_records`); err != nil {
		return 0, errors.Wrap(err, "count FIRs")
	}
	return n, nil
}
