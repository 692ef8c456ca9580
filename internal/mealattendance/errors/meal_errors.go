package mealerrors

import (
	"fmt"
	"net/http"

	"go-hostel/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrDuplicateRecord = apperror.New(
		apperror.CodeConflict,
		"a meal attendance record for this day already exists",
		http.StatusConflict,
	)
)

// AdvanceNotice builds the rejection for a submission that arrives too late
// for the configured lead time.
func AdvanceNotice(days int) *apperror.AppError {
	msg := "meal attendance cannot be marked for a past day"
	if days == 1 {
		msg = "meal attendance must be marked at least one day in advance"
	} else if days > 1 {
		msg = fmt.Sprintf("meal attendance must be marked at least %d days in advance", days)
	}
	return apperror.New(apperror.CodeConflict, msg, http.StatusConflict)
}

// WindowClosed wraps the time-window gate's reason.
func WindowClosed(reason string) *apperror.AppError {
	return apperror.New(apperror.CodeWindowClosed, "meal attendance "+reason, http.StatusBadRequest)
}
