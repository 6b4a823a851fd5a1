package report

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetyworks/depot-report/pkg/models/store"
)

func setupStore(t *testing.T) (Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := NewStore(db)
	require.NoError(t, err)
	return s, mock
}

func TestReportStore_Create(t *testing.T) {
	s, mock := setupStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO reports (id, payload) VALUES (?, ?)`)).
		WithArgs("r-1", `{"depotLocation":"Pinetown"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Create(context.Background(), store.ReportRecord{
		ID:      "r-1",
		Payload: []byte(`{"depotLocation":"Pinetown"}`),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportStore_Get(t *testing.T) {
	s, mock := setupStore(t)

	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "payload", "created_at", "updated_at"}).
		AddRow("r-1", `{"depotLocation":"Pinetown"}`, created, created)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, payload, created_at, updated_at FROM reports WHERE id = ?`)).
		WithArgs("r-1").
		WillReturnRows(rows)

	rec, err := s.Get(context.Background(), "r-1")

	require.NoError(t, err)
	assert.Equal(t, "r-1", rec.ID)
	assert.JSONEq(t, `{"depotLocation":"Pinetown"}`, string(rec.Payload))
	assert.Equal(t, created, rec.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportStore_Get_NotFound(t *testing.T) {
	s, mock := setupStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, payload, created_at, updated_at FROM reports WHERE id = ?`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "payload", "created_at", "updated_at"}))

	_, err := s.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportStore_List(t *testing.T) {
	s, mock := setupStore(t)

	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "payload", "created_at", "updated_at"}).
		AddRow("r-2", `{"reportingPeriod":"2024"}`, now, now).
		AddRow("r-1", `{"reportingPeriod":"2023"}`, now.AddDate(-1, 0, 0), now.AddDate(-1, 0, 0))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, payload, created_at, updated_at FROM reports ORDER BY created_at DESC`)).
		WillReturnRows(rows)

	records, err := s.List(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "r-2", records[0].ID)
	assert.Equal(t, "r-1", records[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportStore_Update(t *testing.T) {
	s, mock := setupStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reports SET payload = ?, updated_at = ? WHERE id = ?`)).
		WithArgs(`{"preparedBy":"J. Smith"}`, sqlmock.AnyArg(), "r-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Update(context.Background(), "r-1", []byte(`{"preparedBy":"J. Smith"}`))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportStore_Update_NotFound(t *testing.T) {
	s, mock := setupStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reports SET payload = ?, updated_at = ? WHERE id = ?`)).
		WithArgs(`{}`, sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Update(context.Background(), "missing", []byte(`{}`))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportStore_Delete(t *testing.T) {
	s, mock := setupStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM reports WHERE id = ?`)).
		WithArgs("r-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := s.Delete(context.Background(), "r-1")

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A delete of a nonexistent id reports false through the boolean result,
// not an error.
func TestReportStore_Delete_Missing(t *testing.T) {
	s, mock := setupStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM reports WHERE id = ?`)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := s.Delete(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
