package response

import (
	"errors"
	"net/http"

	"github.com/hrcore/leave-backend-go/internal/domain/auth"
	"github.com/hrcore/leave-backend-go/internal/domain/client"
	"github.com/hrcore/leave-backend-go/internal/domain/employee"
	"github.com/hrcore/leave-backend-go/internal/domain/holiday"
	"github.com/hrcore/leave-backend-go/internal/domain/leave"
	"github.com/hrcore/leave-backend-go/internal/domain/user"
	"github.com/hrcore/leave-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmpIDExists):
		Conflict(w, "Employee ID already exists")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave not found")
	case errors.Is(err, leave.ErrLeaveNotPending):
		Conflict(w, "Leave has already been resolved")
	case errors.Is(err, leave.ErrInvalidDuration):
		BadRequest(w, "Leave duration must cover at least one business day", nil)
	case errors.Is(err, leave.ErrInsufficientLeaveBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrInsufficientFlexibleHours):
		BadRequest(w, "Insufficient flexible hours", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on that date")

	// Client domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
