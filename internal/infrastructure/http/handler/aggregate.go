package handler

import (
	"net/http"

	"github.com/rezkam/tasks/internal/domain"
	"github.com/rezkam/tasks/internal/infrastructure/http/response"
)

// GetStats handles GET /tasks/stats.
func (h *TaskHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.tasks.Stats(r.Context())
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, MapStatsToDTO(stats))
}

// GetReport handles GET /tasks/report.
func (h *TaskHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.tasks.Report(r.Context())
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, report)
}

// CreateReportSnapshot handles POST /tasks/report/snapshots.
func (h *TaskHandler) CreateReportSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.tasks.SnapshotReport(r.Context())
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.Created(w, snapshot)
}

// ListReportSnapshots handles GET /tasks/report/snapshots, newest first.
func (h *TaskHandler) ListReportSnapshots(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.tasks.ListReportSnapshots(r.Context())
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	if snapshots == nil {
		snapshots = []domain.ReportSnapshot{}
	}
	response.OK(w, snapshots)
}
