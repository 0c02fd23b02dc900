package plans

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rec "skincare-backend/internal/plans/recommendations"
)

const (
	samplePlanID  = "6f1c2b1e-8a4d-4c1e-9b7a-2f3d4e5a6b7c"
	unknownPlanID = "0b7e4a52-3c1d-4f8e-a2b6-9d5c1e7f3a40"
)

var recordColumns = []string{"id", "profile_id", "fingerprint", "survey", "plan", "spf_dropped", "created_at"}

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func sampleRecord(t *testing.T) PlanRecord {
	t.Helper()
	plan, err := rec.BuildPlan(oilyTimeLimited)
	require.NoError(t, err)
	return PlanRecord{
		ID:          samplePlanID,
		ProfileID:   "profile-1",
		Fingerprint: "abc123",
		Survey:      oilyTimeLimited,
		Plan:        plan,
		CreatedAt:   time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC),
	}
}

func recordRow(t *testing.T, r PlanRecord) []driver.Value {
	t.Helper()
	survey, err := json.Marshal(r.Survey)
	require.NoError(t, err)
	plan, err := json.Marshal(r.Plan)
	require.NoError(t, err)
	var profile any
	if r.ProfileID != "" {
		profile = r.ProfileID
	}
	return []driver.Value{r.ID, profile, r.Fingerprint, survey, plan, r.SPFDropped, r.CreatedAt}
}

func TestPGRepoCreateWritesJSONB(t *testing.T) {
	repo, mock := newMockRepo(t)
	record := sampleRecord(t)
	record.ProfileID = ""

	mock.ExpectExec("INSERT INTO skin_plans").
		WithArgs(
			record.ID,
			nil, // anonymous profile
			record.Fingerprint,
			rec.RoutineStreamlined,
			sqlmock.AnyArg(), // survey
			sqlmock.AnyArg(), // plan
			false,
			record.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(context.Background(), record))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	record := sampleRecord(t)

	mock.ExpectQuery("SELECT (.+) FROM skin_plans WHERE id").
		WithArgs(samplePlanID).
		WillReturnRows(sqlmock.NewRows(recordColumns).AddRow(recordRow(t, record)...))

	got, err := repo.GetByID(context.Background(), samplePlanID)
	require.NoError(t, err)
	assert.Equal(t, record.ProfileID, got.ProfileID)
	assert.Equal(t, record.Plan, got.Plan)
	assert.Equal(t, record.Survey.Concerns, got.Survey.Concerns)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM skin_plans WHERE id").
		WithArgs(unknownPlanID).
		WillReturnRows(sqlmock.NewRows(recordColumns))

	_, err := repo.GetByID(context.Background(), unknownPlanID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPGRepoGetByIDMalformedIDSkipsQuery(t *testing.T) {
	repo, mock := newMockRepo(t)

	for _, id := range []string{"not-a-uuid", "plan-1", "6f1c2b1e'; DROP TABLE skin_plans;--"} {
		_, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, ErrNotFound, "id %q", id)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetByIDNormalizesCase(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM skin_plans WHERE id").
		WithArgs(samplePlanID).
		WillReturnRows(sqlmock.NewRows(recordColumns))

	_, err := repo.GetByID(context.Background(), strings.ToUpper(samplePlanID))
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoListByProfileClampsPage(t *testing.T) {
	repo, mock := newMockRepo(t)
	newer := sampleRecord(t)
	newer.ID = "plan-2"
	older := sampleRecord(t)
	older.CreatedAt = newer.CreatedAt.Add(-time.Hour)

	mock.ExpectQuery("SELECT (.+) FROM skin_plans WHERE profile_id = (.+) ORDER BY created_at DESC").
		WithArgs("profile-1", maxListLimit, 0).
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow(recordRow(t, newer)...).
			AddRow(recordRow(t, older)...))

	got, err := repo.ListByProfile(context.Background(), "profile-1", 1000, -5)
	require.NoError(t, err)
	assert.Equal(t, []string{"plan-2", samplePlanID}, recordIDs(got))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoRejectsCorruptPlan(t *testing.T) {
	repo, mock := newMockRepo(t)
	row := recordRow(t, sampleRecord(t))
	row[4] = []byte("{not json")
	mock.ExpectQuery("SELECT (.+) FROM skin_plans WHERE id").
		WithArgs(samplePlanID).
		WillReturnRows(sqlmock.NewRows(recordColumns).AddRow(row...))

	_, err := repo.GetByID(context.Background(), samplePlanID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode plan "+samplePlanID)
}
