package main

import (
	"context"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/repositories"
	"github.com/myrjola/smartcop/internal/sqlite"
	"github.com/myrjola/smartcop/internal/testhelpers"
	"log/slog"
	"os"
	"time"
)

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	var (
		err       error
		start     = time.Now()
		ctx       context.Context
		sqliteURL string
		ok        bool
		cancel    context.CancelFunc
	)
	ctx = context.Background()
	ctx, cancel = context.WithTimeout(ctx, 5*time.Second) //nolint:mnd // 5 seconds

	if sqliteURL, ok = os.LookupEnv("SMARTCOP_SQLITE_URL"); !ok {
		logger.LogAttrs(ctx, slog.LevelError, "SMARTCOP_SQLITE_URL not set")
		os.Exit(1)
	}

	// Opening the database migrates a copy of the production schema to the current one.
	var db *sqlite.Database
	if db, err = sqlite.NewDatabase(ctx, sqliteURL, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating database",
			slog.String("url", sqliteURL), errors.SlogError(err))
		os.Exit(1)
	}

	// Reading the saved reports back verifies that the migrated rows still decode.
	firs := repositories.NewFIRRepository(db, nil, logger)
	var count int
	if count, err = firs.Count(ctx); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error counting FIRs", errors.SlogError(err))
		os.Exit(1)
	}
	if _, err = firs.List(ctx, repositories.ListOptions{Search: "", Limit: 0}); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error listing FIRs", errors.SlogError(err))
		os.Exit(1)
	}
	if _, err = repositories.NewActivityRepository(db, logger).Recent(ctx, 1); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error listing activities", errors.SlogError(err))
		os.Exit(1)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "FIR count", slog.Int("count", count))

	if err = db.Close(); err != nil {
		logger.LogAttrs(ctx, slog.LevelWarn, "error closing database", errors.SlogError(err))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "Migration test successful 🙌", slog.Duration("duration", time.Since(start)))
	cancel()
	os.Exit(0)
}
