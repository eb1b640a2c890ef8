package http

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/punchlog/punchlog-backend-go/internal/domain/biometric"
	"github.com/punchlog/punchlog-backend-go/internal/handler/http/response"
)

const maxUploadSize = 10 << 20 // 10 MiB

type LogHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
}

type LogHandlerImpl struct {
	logService biometric.LogService
}

func NewLogHandler(logService biometric.LogService) LogHandler {
	return &LogHandlerImpl{logService: logService}
}

// Import implements LogHandler. Accepts either a multipart upload under the
// "file" field or a raw CSV request body.
func (h *LogHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var importReq biometric.ImportRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			slog.Error("Import parse multipart error", "error", err)
			response.BadRequest(w, "Invalid multipart form", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			slog.Error("Import missing file field", "error", err)
			response.BadRequest(w, "Missing file field", nil)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			slog.Error("Import read file error", "error", err)
			response.BadRequest(w, "Failed to read uploaded file", nil)
			return
		}

		importReq.CSVText = string(content)
		importReq.FileName = header.Filename
		importReq.Mode = r.FormValue("mode")
	} else {
		content, err := io.ReadAll(io.LimitReader(r.Body, maxUploadSize))
		if err != nil {
			slog.Error("Import read body error", "error", err)
			response.BadRequest(w, "Failed to read request body", nil)
			return
		}

		importReq.CSVText = string(content)
		importReq.Mode = r.URL.Query().Get("mode")
	}

	// Call service
	result, err := h.logService.ImportCSV(r.Context(), importReq)
	if err != nil {
		slog.Error("Import service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Logs imported successfully",
		"batch_id", result.BatchID,
		"rows_imported", result.RowsImported,
		"rows_skipped", result.RowsSkipped,
	)
	response.Created(w, "Logs imported successfully", result)
}

// List implements LogHandler.
func (h *LogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter biometric.LogFilter

	employeeNo, ok := parseIntQuery(r, "employee_no")
	if !ok {
		response.BadRequest(w, "employee_no must be a number", nil)
		return
	}
	filter.EmployeeNo = employeeNo

	if page, ok := parseIntQuery(r, "page"); !ok {
		response.BadRequest(w, "page must be a number", nil)
		return
	} else if page != nil {
		filter.Page = *page
	}

	if limit, ok := parseIntQuery(r, "limit"); !ok {
		response.BadRequest(w, "limit must be a number", nil)
		return
	} else if limit != nil {
		filter.Limit = *limit
	}

	// Call service
	result, err := h.logService.ListLogs(r.Context(), filter)
	if err != nil {
		slog.Error("List logs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Logs, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Clear implements LogHandler.
func (h *LogHandlerImpl) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.logService.ClearLogs(r.Context()); err != nil {
		slog.Error("Clear logs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("All logs cleared")
	response.SuccessWithMessage(w, "All logs cleared", nil)
}

// parseIntQuery reads an optional integer query parameter. The second return
// value is false when the parameter is present but not a valid integer.
func parseIntQuery(r *http.Request, key string) (*int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &value, true
}
