package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/safetyworks/depot-report/pkg/models/store"
	"github.com/safetyworks/depot-report/pkg/store/duckdb"
)

// Store persists report records. Identity is assigned by the caller before
// Create and is never rewritten afterwards.
type Store interface {
	Create(ctx context.Context, rec store.ReportRecord) error
	Get(ctx context.Context, id string) (store.ReportRecord, error)
	List(ctx context.Context) ([]store.ReportRecord, error)
	Update(ctx context.Context, id string, payload []byte) error
	Delete(ctx context.Context, id string) (bool, error)
}

// ErrNotFound is returned by Get and Update for unknown report ids. Delete
// reports a missing id through its boolean result instead.
var ErrNotFound = errors.New("report not found")

type reportStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reportStore{db: db}, nil
}

func (s *reportStore) Create(ctx context.Context, rec store.ReportRecord) error {
	query := `INSERT INTO reports (id, payload) VALUES (?, ?)`

	var err error
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		_, err = tx.ExecContext(ctx, query, rec.ID, string(rec.Payload))
	} else {
		_, err = s.db.ExecContext(ctx, query, rec.ID, string(rec.Payload))
	}
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (s *reportStore) Get(ctx context.Context, id string) (store.ReportRecord, error) {
	query := `SELECT id, payload, created_at, updated_at FROM reports WHERE id = ?`

	var (
		rec     store.ReportRecord
		payload string
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(&rec.ID, &payload, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ReportRecord{}, ErrNotFound
	}
	if err != nil {
		return store.ReportRecord{}, fmt.Errorf("query report: %w", err)
	}
	rec.Payload = []byte(payload)
	return rec, nil
}

func (s *reportStore) List(ctx context.Context) ([]store.ReportRecord, error) {
	query := `SELECT id, payload, created_at, updated_at FROM reports ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	records := make([]store.ReportRecord, 0)
	for rows.Next() {
		var (
			rec     store.ReportRecord
			payload string
		)
		if err := rows.Scan(&rec.ID, &payload, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		rec.Payload = []byte(payload)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *reportStore) Update(ctx context.Context, id string, payload []byte) error {
	query := `UPDATE reports SET payload = ?, updated_at = ? WHERE id = ?`

	var (
		res sql.Result
		err error
	)
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		res, err = tx.ExecContext(ctx, query, string(payload), time.Now().UTC(), id)
	} else {
		res, err = s.db.ExecContext(ctx, query, string(payload), time.Now().UTC(), id)
	}
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *reportStore) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM reports WHERE id = ?`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete report: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete report: %w", err)
	}
	return affected > 0, nil
}
