package plans

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const selectColumns = `id, profile_id, fingerprint, survey, plan, spf_dropped, created_at`

// Create inserts a plan record. Survey and plan are stored as JSONB.
func (r *PGRepo) Create(ctx context.Context, record PlanRecord) error {
	const query = `
INSERT INTO skin_plans (id, profile_id, fingerprint, routine_type, survey, plan, spf_dropped, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	survey, err := json.Marshal(record.Survey)
	if err != nil {
		return fmt.Errorf("marshal survey: %w", err)
	}
	plan, err := json.Marshal(record.Plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		record.ID,
		nullableString(record.ProfileID),
		record.Fingerprint,
		record.Plan.RoutineType,
		survey,
		plan,
		record.SPFDropped,
		record.CreatedAt,
	)
	return err
}

// GetByID loads a single plan record.
func (r *PGRepo) GetByID(ctx context.Context, id string) (PlanRecord, error) {
	// ids are UUIDs; anything else cannot name a stored plan and would make
	// Postgres reject the uuid cast.
	parsed, err := uuid.Parse(id)
	if err != nil {
		return PlanRecord{}, ErrNotFound
	}
	query := `SELECT ` + selectColumns + ` FROM skin_plans WHERE id = $1 LIMIT 1`
	record, err := scanRecord(r.DB.QueryRowContext(ctx, query, parsed.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PlanRecord{}, ErrNotFound
		}
		return PlanRecord{}, err
	}
	return record, nil
}

// ListByProfile lists a profile's plans ordered newest-first.
func (r *PGRepo) ListByProfile(ctx context.Context, profileID string, limit, offset int) ([]PlanRecord, error) {
	limit, offset = clampPage(limit, offset)
	query := `SELECT ` + selectColumns + `
FROM skin_plans
WHERE profile_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, profileID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PlanRecord, 0, limit)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (PlanRecord, error) {
	var (
		record    PlanRecord
		profileID sql.NullString
		survey    []byte
		plan      []byte
	)
	if err := row.Scan(
		&record.ID,
		&profileID,
		&record.Fingerprint,
		&survey,
		&plan,
		&record.SPFDropped,
		&record.CreatedAt,
	); err != nil {
		return PlanRecord{}, err
	}
	if profileID.Valid {
		record.ProfileID = profileID.String
	}
	if err := json.Unmarshal(survey, &record.Survey); err != nil {
		return PlanRecord{}, fmt.Errorf("decode survey %s: %w", record.ID, err)
	}
	if err := json.Unmarshal(plan, &record.Plan); err != nil {
		return PlanRecord{}, fmt.Errorf("decode plan %s: %w", record.ID, err)
	}
	return record, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
