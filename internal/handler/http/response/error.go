package response

import (
	"errors"
	"net/http"

	"github.com/workzen/workzen-backend-go/internal/domain/achievement"
	"github.com/workzen/workzen-backend-go/internal/domain/auth"
	"github.com/workzen/workzen-backend-go/internal/domain/leave"
	"github.com/workzen/workzen-backend-go/internal/domain/user"
	"github.com/workzen/workzen-backend-go/internal/pkg/validator"
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

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrNotACounselor):
		BadRequest(w, "Referenced user is not a counselor", nil)
	case errors.Is(err, user.ErrApproverRoleOnly):
		Forbidden(w, "Only counselors and the HOD can perform this action")
	case errors.Is(err, user.ErrHODAccessRequired):
		Forbidden(w, "HOD access required")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrLeaveNotPending):
		Conflict(w, "Leave request is no longer pending")
	case errors.Is(err, leave.ErrNotOwner):
		Forbidden(w, "Only the request owner can do this")
	case errors.Is(err, leave.ErrOutsideScope):
		Forbidden(w, "Leave request is outside your scope")
	case errors.Is(err, leave.ErrFileTypeNotAllowed):
		UnsupportedMediaType(w, "Only PDF documents are allowed")
	case errors.Is(err, leave.ErrFileSizeExceeds):
		PayloadTooLarge(w, "Document exceeds the 5 MiB limit")

	// Achievement domain errors
	case errors.Is(err, achievement.ErrAchievementNotFound):
		NotFound(w, "Achievement not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
