package response

import (
	"errors"
	"net/http"

	"github.com/punchlog/punchlog-backend-go/internal/domain/auth"
	"github.com/punchlog/punchlog-backend-go/internal/domain/biometric"
	"github.com/punchlog/punchlog-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidOAuthState):
		Unauthorized(w, "Invalid OAuth state")
	case errors.Is(err, auth.ErrEmailNotAllowed):
		Forbidden(w, "Email is not allowed to access this dashboard")

	// Biometric log domain errors
	case errors.Is(err, biometric.ErrMalformedCSV):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, biometric.ErrEmptyUpload):
		BadRequest(w, "Uploaded file is empty", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
