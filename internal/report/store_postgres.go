package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"psyscreen/pkg/platform/sentinel"
)

// PostgresStore archives records in a single table. Scale results, factor
// lists and the biographical echo are JSONB columns; a re-run of the same
// session replaces the prior archive row.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the archive table.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS assessment_records (
			session_id        UUID PRIMARY KEY,
			profile           TEXT NOT NULL,
			created_at        TIMESTAMPTZ NOT NULL,
			completed_at      TIMESTAMPTZ NOT NULL,
			full_name         TEXT NOT NULL DEFAULT '',
			birth_date        TEXT NOT NULL DEFAULT '',
			biographical      JSONB NOT NULL,
			scales            JSONB NOT NULL,
			sincerity_ignored BOOLEAN NOT NULL,
			verdict           TEXT NOT NULL,
			critical_factors  JSONB NOT NULL,
			warning_factors   JSONB NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("migrate assessment_records: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, record Record) error {
	biographical, err := json.Marshal(record.Biographical)
	if err != nil {
		return fmt.Errorf("marshal biographical: %w", err)
	}
	scales, err := json.Marshal(record.Scales)
	if err != nil {
		return fmt.Errorf("marshal scales: %w", err)
	}
	critical, err := json.Marshal(record.CriticalFactors)
	if err != nil {
		return fmt.Errorf("marshal critical factors: %w", err)
	}
	warning, err := json.Marshal(record.WarningFactors)
	if err != nil {
		return fmt.Errorf("marshal warning factors: %w", err)
	}

	query := `
		INSERT INTO assessment_records (
			session_id, profile, created_at, completed_at,
			full_name, birth_date, biographical, scales,
			sincerity_ignored, verdict, critical_factors, warning_factors
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (session_id) DO UPDATE SET
			completed_at      = EXCLUDED.completed_at,
			biographical      = EXCLUDED.biographical,
			scales            = EXCLUDED.scales,
			sincerity_ignored = EXCLUDED.sincerity_ignored,
			verdict           = EXCLUDED.verdict,
			critical_factors  = EXCLUDED.critical_factors,
			warning_factors   = EXCLUDED.warning_factors
	`
	_, err = s.db.ExecContext(ctx, query,
		record.SessionID, record.Profile, record.CreatedAt, record.CompletedAt,
		record.FullName, record.BirthDate, biographical, scales,
		record.SincerityIgnored, record.Verdict, critical, warning,
	)
	if err != nil {
		return fmt.Errorf("insert assessment record: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, sessionID uuid.UUID) (Record, error) {
	query := `
		SELECT session_id, profile, created_at, completed_at,
		       full_name, birth_date, biographical, scales,
		       sincerity_ignored, verdict, critical_factors, warning_factors
		FROM assessment_records
		WHERE session_id = $1
	`

	var (
		record       Record
		biographical []byte
		scales       []byte
		critical     []byte
		warning      []byte
	)
	err := s.db.QueryRowContext(ctx, query, sessionID).Scan(
		&record.SessionID, &record.Profile, &record.CreatedAt, &record.CompletedAt,
		&record.FullName, &record.BirthDate, &biographical, &scales,
		&record.SincerityIgnored, &record.Verdict, &critical, &warning,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, sentinel.ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("select assessment record: %w", err)
	}

	if err := json.Unmarshal(biographical, &record.Biographical); err != nil {
		return Record{}, fmt.Errorf("unmarshal biographical: %w", err)
	}
	if err := json.Unmarshal(scales, &record.Scales); err != nil {
		return Record{}, fmt.Errorf("unmarshal scales: %w", err)
	}
	if err := json.Unmarshal(critical, &record.CriticalFactors); err != nil {
		return Record{}, fmt.Errorf("unmarshal critical factors: %w", err)
	}
	if err := json.Unmarshal(warning, &record.WarningFactors); err != nil {
		return Record{}, fmt.Errorf("unmarshal warning factors: %w", err)
	}
	return record, nil
}
