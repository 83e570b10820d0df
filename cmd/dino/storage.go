package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garrettladley/dino/internal/config"
	"github.com/garrettladley/dino/internal/db"
	"github.com/garrettladley/dino/internal/paths"
	"github.com/garrettladley/dino/internal/patient"
	"github.com/garrettladley/dino/internal/xslog"
)

func openPatientStore(ctx context.Context) (*patient.SQLiteStore, *sql.DB, error) {
	if _, err := paths.EnsureDir(); err != nil {
		return nil, nil, err
	}

	dbPath, err := paths.DB()
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := db.Open(ctx, dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	return patient.NewSQLiteStore(sqlDB), sqlDB, nil
}

// resolvePatientID prefers DINO_PATIENT_ID and falls back to the device
// store. An unreadable store degrades to "" so the screen still opens.
func resolvePatientID(ctx context.Context, cfg config.Config) string {
	if cfg.PatientID != "" {
		id, _ := patient.Resolve(ctx, nil, cfg.PatientID)
		return id
	}

	logger := xslog.FromContext(ctx)

	store, sqlDB, err := openPatientStore(ctx)
	if err != nil {
		logger.WarnContext(ctx, "patient store unavailable", xslog.Error(err))
		return ""
	}
	defer func() { _ = sqlDB.Close() }()

	id, err := patient.Resolve(ctx, store, "")
	if err != nil {
		logger.WarnContext(ctx, "failed to read patient id", xslog.Error(err))
		return ""
	}
	return id
}
