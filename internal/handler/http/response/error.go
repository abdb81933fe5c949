package response

import (
	"errors"
	"net/http"

	"github.com/auraswift/pos-backend-go/internal/domain/auth"
	"github.com/auraswift/pos-backend-go/internal/domain/expiry"
	"github.com/auraswift/pos-backend-go/internal/domain/maintenance"
	"github.com/auraswift/pos-backend-go/internal/domain/role"
	"github.com/auraswift/pos-backend-go/internal/domain/schedule"
	"github.com/auraswift/pos-backend-go/internal/domain/settings"
	"github.com/auraswift/pos-backend-go/internal/domain/shift"
	"github.com/auraswift/pos-backend-go/internal/domain/timeclock"
	"github.com/auraswift/pos-backend-go/internal/domain/user"
	"github.com/auraswift/pos-backend-go/internal/pkg/validator"
)

// Error codes clients branch on. This set is closed; adding a code is an API
// change.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeForbidden       = "FORBIDDEN"

	CodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeInvalidSession     = "INVALID_SESSION"
	CodeSessionRevoked     = "SESSION_REVOKED"

	CodeUserNotFound     = "USER_NOT_FOUND"
	CodeUserInactive     = "USER_INACTIVE"
	CodeEmailExists      = "EMAIL_EXISTS"
	CodeSelfDeleteDenied = "SELF_DELETE_DENIED"
	CodeBusinessMismatch = "BUSINESS_MISMATCH"

	CodeRoleNotFound        = "ROLE_NOT_FOUND"
	CodeRoleExists          = "ROLE_EXISTS"
	CodeRoleInUse           = "ROLE_IN_USE"
	CodeSystemRoleProtected = "SYSTEM_ROLE_PROTECTED"

	CodeScheduleNotFound         = "SCHEDULE_NOT_FOUND"
	CodeScheduleOverlap          = "SCHEDULE_OVERLAP"
	CodeInvalidTimeRange         = "INVALID_TIME_RANGE"
	CodeScheduleValidationFailed = "SCHEDULE_VALIDATION_FAILED"

	CodeNotClockedIn      = "NOT_CLOCKED_IN"
	CodeAlreadyClockedIn  = "ALREADY_CLOCKED_IN"
	CodeClockInNotAllowed = "CLOCK_IN_NOT_ALLOWED"
	CodeBreakInProgress   = "BREAK_IN_PROGRESS"
	CodeNoBreakInProgress = "NO_BREAK_IN_PROGRESS"

	CodeShiftNotFound            = "SHIFT_NOT_FOUND"
	CodeNoActiveShift            = "NO_ACTIVE_SHIFT"
	CodeShiftAlreadyActive       = "SHIFT_ALREADY_ACTIVE"
	CodeShiftActiveOtherTerminal = "SHIFT_ACTIVE_OTHER_TERMINAL"
	CodeInvalidStartingCash      = "INVALID_STARTING_CASH"

	CodeNotificationNotFound = "NOTIFICATION_NOT_FOUND"

	CodeSettingNotFound         = "SETTING_NOT_FOUND"
	CodeEncryptionNotConfigured = "ENCRYPTION_NOT_CONFIGURED"
	CodeInvalidDatabaseFile     = "INVALID_DATABASE_FILE"
	CodeDatabaseOperationFailed = "DATABASE_OPERATION_FAILED"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var importErr *maintenance.ImportError
	if errors.As(err, &importErr) {
		if errors.Is(importErr.Err, maintenance.ErrInvalidDatabaseFile) {
			BadRequest(w, CodeInvalidDatabaseFile, importErr.Error())
			return
		}
		InternalServerError(w, importErr.Error())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrRateLimited):
		TooManyRequests(w, CodeRateLimitExceeded, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, CodeInvalidCredentials, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, CodeTokenInvalid, err.Error())
	case errors.Is(err, auth.ErrSessionRevoked):
		Unauthorized(w, CodeSessionRevoked, err.Error())
	case errors.Is(err, auth.ErrInvalidSession):
		Unauthorized(w, CodeInvalidSession, err.Error())

	// Users
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, CodeUserNotFound, err.Error())
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, CodeUserInactive, err.Error())
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, CodeEmailExists, err.Error())
	case errors.Is(err, user.ErrSelfDeleteDenied):
		Forbidden(w, CodeSelfDeleteDenied, err.Error())
	case errors.Is(err, user.ErrBusinessMismatch):
		Forbidden(w, CodeBusinessMismatch, err.Error())

	// Roles
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, CodeRoleNotFound, err.Error())
	case errors.Is(err, role.ErrRoleExists):
		Conflict(w, CodeRoleExists, err.Error())
	case errors.Is(err, role.ErrRoleInUse):
		Conflict(w, CodeRoleInUse, err.Error())
	case errors.Is(err, role.ErrSystemRoleProtected):
		Forbidden(w, CodeSystemRoleProtected, err.Error())
	case errors.Is(err, role.ErrAssignmentNotFound):
		NotFound(w, CodeRoleNotFound, err.Error())
	case errors.Is(err, role.ErrPermissionNotFound):
		NotFound(w, CodeRoleNotFound, err.Error())

	// Schedules
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, CodeScheduleNotFound, err.Error())
	case errors.Is(err, schedule.ErrScheduleOverlap):
		Conflict(w, CodeScheduleOverlap, err.Error())
	case errors.Is(err, schedule.ErrInvalidTimeRange):
		BadRequest(w, CodeInvalidTimeRange, err.Error())
	case errors.Is(err, schedule.ErrValidationFailed):
		BadRequest(w, CodeScheduleValidationFailed, err.Error())

	// Time clock
	case errors.Is(err, timeclock.ErrNotClockedIn):
		BadRequest(w, CodeNotClockedIn, err.Error())
	case errors.Is(err, timeclock.ErrAlreadyClockedIn):
		Conflict(w, CodeAlreadyClockedIn, err.Error())
	case errors.Is(err, timeclock.ErrClockInNotAllowed):
		Forbidden(w, CodeClockInNotAllowed, err.Error())
	case errors.Is(err, timeclock.ErrBreakInProgress):
		Conflict(w, CodeBreakInProgress, err.Error())
	case errors.Is(err, timeclock.ErrNoBreakInProgress):
		BadRequest(w, CodeNoBreakInProgress, err.Error())
	case errors.Is(err, timeclock.ErrShiftNotFound):
		NotFound(w, CodeShiftNotFound, err.Error())

	// POS shifts
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, CodeShiftNotFound, err.Error())
	case errors.Is(err, shift.ErrNoActiveShift):
		NotFound(w, CodeNoActiveShift, err.Error())
	case errors.Is(err, shift.ErrShiftAlreadyActive):
		Conflict(w, CodeShiftAlreadyActive, err.Error())
	case errors.Is(err, shift.ErrShiftActiveOtherTerminal):
		Conflict(w, CodeShiftActiveOtherTerminal, err.Error())
	case errors.Is(err, shift.ErrNegativeStartingCash):
		BadRequest(w, CodeInvalidStartingCash, err.Error())
	case errors.Is(err, shift.ErrStartingCashTooHigh):
		BadRequest(w, CodeInvalidStartingCash, err.Error())
	case errors.Is(err, shift.ErrScheduleValidationFailed):
		Forbidden(w, CodeScheduleValidationFailed, err.Error())

	// Expiry
	case errors.Is(err, expiry.ErrNotificationNotFound):
		NotFound(w, CodeNotificationNotFound, err.Error())

	// Settings and maintenance
	case errors.Is(err, settings.ErrSettingNotFound):
		NotFound(w, CodeSettingNotFound, err.Error())
	case errors.Is(err, settings.ErrEncryptionNotConfigured):
		BadRequest(w, CodeEncryptionNotConfigured, err.Error())
	case errors.Is(err, maintenance.ErrInvalidDatabaseFile):
		BadRequest(w, CodeInvalidDatabaseFile, err.Error())
	case errors.Is(err, maintenance.ErrBackupFailed):
		InternalServerError(w, err.Error())

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
