package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/punchlog/punchlog-backend-go/internal/domain/report"
	"github.com/punchlog/punchlog-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	EmployeeSummary(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// EmployeeSummary implements ReportHandler. Responds with JSON by default;
// ?format=csv streams the report as a download.
func (h *ReportHandlerImpl) EmployeeSummary(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "csv" {
		content, err := h.reportService.ExportEmployeeSummaryCSV(r.Context())
		if err != nil {
			slog.Error("Export report service error", "error", err)
			response.HandleError(w, err)
			return
		}

		fileName := fmt.Sprintf("employee-summary-%s.csv", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(content)
		return
	}

	result, err := h.reportService.GetEmployeeSummary(r.Context())
	if err != nil {
		slog.Error("Report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
