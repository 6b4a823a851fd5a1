package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/safetyworks/depot-report/pkg/adapters"
	"github.com/safetyworks/depot-report/pkg/models/api"
	"github.com/safetyworks/depot-report/pkg/services/report"
)

type Handler struct {
	manager report.Manager
}

func NewHandler(manager report.Manager) *Handler {
	return &Handler{manager: manager}
}

// CreateReport validates the submitted report and persists it. Validation
// failures come back as 422 with the complete violation list so the form
// can mark every offending field at once.
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var candidate api.Report
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		http.Error(w, "invalid report payload", http.StatusBadRequest)
		return
	}

	validated, violations := report.Validate(candidate)
	if len(violations) > 0 {
		writeJSON(w, logger, http.StatusUnprocessableEntity, api.ValidationFailure{
			Violations: adapters.MapViolationsDomainToApi(violations),
		})
		return
	}

	id, err := h.manager.CreateReport(ctx, validated)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create report")
		http.Error(w, "failed to create report", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, http.StatusCreated, api.ReportCreated{ID: id})
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	reports, err := h.manager.ListReports(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list reports")
		http.Error(w, "failed to list reports", http.StatusInternalServerError)
		return
	}

	response := make([]api.Report, 0, len(reports))
	for _, rep := range reports {
		response = append(response, adapters.MapDomainReportToApi(rep))
	}
	writeJSON(w, logger, http.StatusOK, response)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	rep, err := h.manager.GetReport(ctx, id)
	if errors.Is(err, report.ErrNotFound) {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to get report")
		http.Error(w, "failed to get report", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, http.StatusOK, adapters.MapDomainReportToApi(rep))
}

// UpdateReport validates the replacement payload and stores it under the
// existing id. Identity is preserved; the payload's own id field is ignored.
func (h *Handler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	var candidate api.Report
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		http.Error(w, "invalid report payload", http.StatusBadRequest)
		return
	}

	validated, violations := report.Validate(candidate)
	if len(violations) > 0 {
		writeJSON(w, logger, http.StatusUnprocessableEntity, api.ValidationFailure{
			Violations: adapters.MapViolationsDomainToApi(violations),
		})
		return
	}

	err := h.manager.UpdateReport(ctx, id, validated)
	if errors.Is(err, report.ErrNotFound) {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to update report")
		http.Error(w, "failed to update report", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	deleted, err := h.manager.DeleteReport(ctx, id)
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to delete report")
		http.Error(w, "failed to delete report", http.StatusInternalServerError)
		return
	}

	writeJSON(w, logger, http.StatusOK, api.DeleteResult{Deleted: deleted})
}

// GetDocument renders the stored report and streams it as a PDF.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	document, err := h.manager.ExportDocument(ctx, id)
	if errors.Is(err, report.ErrNotFound) {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to export document")
		http.Error(w, "failed to export document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	if _, err := w.Write(document); err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to write document")
	}
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
