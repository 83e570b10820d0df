package patient

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var _ ReadWriter = (*SQLiteStore)(nil)

var ErrEmptyID = errors.New("patient id must not be empty")

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) PatientID(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, "SELECT patient_id FROM patient WHERE id = 1").Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read patient id: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) SetPatientID(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrEmptyID
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO patient (id, patient_id, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET patient_id = excluded.patient_id, updated_at = excluded.updated_at
	`, id)
	if err != nil {
		return fmt.Errorf("failed to store patient id: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM patient"); err != nil {
		return fmt.Errorf("failed to clear patient id: %w", err)
	}
	return nil
}
