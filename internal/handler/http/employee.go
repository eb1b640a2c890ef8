package http

import (
	"log/slog"
	"net/http"

	"github.com/punchlog/punchlog-backend-go/internal/domain/biometric"
	"github.com/punchlog/punchlog-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	logService biometric.LogService
}

func NewEmployeeHandler(logService biometric.LogService) EmployeeHandler {
	return &EmployeeHandlerImpl{logService: logService}
}

// List implements EmployeeHandler. The roster is derived from the stored
// punch events, not maintained separately.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.logService.ListEmployees(r.Context())
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}
