package report

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/safetyworks/depot-report/pkg/adapters"
	"github.com/safetyworks/depot-report/pkg/models/domain"
	"github.com/safetyworks/depot-report/pkg/services/render"
	"github.com/safetyworks/depot-report/pkg/services/render/pdf"
	"github.com/safetyworks/depot-report/pkg/store/duckdb"
	reportstore "github.com/safetyworks/depot-report/pkg/store/duckdb/report"
)

// ErrNotFound mirrors the store sentinel so callers only deal with the
// service package.
var ErrNotFound = reportstore.ErrNotFound

// Manager owns the lifecycle of persisted reports and their rendered
// documents. Inputs are assumed validated; Manager never re-runs the rules.
type Manager interface {
	CreateReport(ctx context.Context, report domain.Report) (string, error)
	GetReport(ctx context.Context, id string) (domain.Report, error)
	ListReports(ctx context.Context) ([]domain.Report, error)
	UpdateReport(ctx context.Context, id string, report domain.Report) error
	DeleteReport(ctx context.Context, id string) (bool, error)
	ExportDocument(ctx context.Context, id string) ([]byte, error)
}

type manager struct {
	db       *sql.DB
	store    reportstore.Store
	renderer *render.Renderer
	encoder  *pdf.Encoder
}

func NewManager(db *sql.DB, store reportstore.Store) Manager {
	return &manager{
		db:       db,
		store:    store,
		renderer: render.NewRenderer(nil),
		encoder:  pdf.NewEncoder(),
	}
}

func (m *manager) CreateReport(ctx context.Context, report domain.Report) (string, error) {
	report.ID = uuid.NewString()

	rec, err := adapters.MapDomainReportToRecord(report)
	if err != nil {
		return "", err
	}
	if err := m.store.Create(ctx, rec); err != nil {
		return "", err
	}
	return report.ID, nil
}

func (m *manager) GetReport(ctx context.Context, id string) (domain.Report, error) {
	rec, err := m.store.Get(ctx, id)
	if err != nil {
		return domain.Report{}, err
	}
	return adapters.MapRecordToDomainReport(rec)
}

func (m *manager) ListReports(ctx context.Context) ([]domain.Report, error) {
	records, err := m.store.List(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]domain.Report, 0, len(records))
	for _, rec := range records {
		report, err := adapters.MapRecordToDomainReport(rec)
		if err != nil {
			return nil, fmt.Errorf("decode report %s: %w", rec.ID, err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// UpdateReport replaces the stored payload for an existing id. The incoming
// report keeps the record's identity regardless of what the caller set.
func (m *manager) UpdateReport(ctx context.Context, id string, report domain.Report) error {
	report.ID = id

	rec, err := adapters.MapDomainReportToRecord(report)
	if err != nil {
		return err
	}

	if m.db == nil {
		return m.store.Update(ctx, id, rec.Payload)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update: %w", err)
	}
	if err := m.store.Update(duckdb.WithTransaction(ctx, tx), id, rec.Payload); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update: %w", err)
	}
	return nil
}

func (m *manager) DeleteReport(ctx context.Context, id string) (bool, error) {
	return m.store.Delete(ctx, id)
}

// ExportDocument renders the stored report and encodes it as PDF bytes.
func (m *manager) ExportDocument(ctx context.Context, id string) ([]byte, error) {
	report, err := m.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	pages := m.renderer.Render(report)
	return m.encoder.EncodeBytes(pages)
}
