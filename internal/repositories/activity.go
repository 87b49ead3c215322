package repositories

import (
	"context"
	"database/sql"
	"github.com/google/uuid"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/models"
	"github.com/myrjola/smartcop/internal/sqlite"
	"log/slog"
	"time"
)

type ActivityRepository struct {
	dbs    *sqlite.Database
	logger *slog.Logger
}

func NewActivityRepository(dbs *sqlite.Database, logger *slog.Logger) *ActivityRepository {
	return &ActivityRepository{
		dbs:    dbs,
		logger: logger.With("source", "ActivityRepository"),
	}
}

// Add appends activity to the timeline, assigning its ID and timestamp when they are missing.
func (r *ActivityRepository) Add(ctx context.Context, activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}
	activity.CreatedAt = activity.CreatedAt.UTC()
	stmt := `INSERT INTO activities (id, kind, title, case_id, details, created_at)
VALUES (:id, :kind, :title, :case_id, :details, :created_at)`
	if _, err := r.dbs.ReadWrite.ExecContext(ctx, stmt,
		sql.Named("id", activity.ID),
		sql.Named("kind", activity.Kind),
		sql.Named("title", activity.Title),
		sql.Named("case_id", activity.CaseID),
		sql.Named("details", activity.Details),
		sql.Named("created_at", activity.CreatedAt),
	); err != nil {
		return errors.Wrap(err, "insert activity", slog.String("kind", activity.Kind))
	}
	return nil
}

// Recent returns at most limit activities, most recent first.
func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	activities := []models.Activity{}
	if err := r.dbs.ReadOnly.SelectContext(ctx, &activities, `SELECT id, kind, title, case_id, details, created_at
FROM activities
ORDER BY created_at DESC, rowid DESC
LIMIT ?`, limit); err != nil {
		return nil, errors.Wrap(err, "select activities")
	}
	return activities, nil
}
