package typederrors

import (
	"net/http"

	"go-hostel/internal/shared/apperror"
)

var (
	ErrInvalidType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid attendance type for ward posting",
		http.StatusBadRequest,
	)
	ErrMissingPhoto = apperror.New(
		apperror.CodeInvalidInput,
		"photo is required",
		http.StatusBadRequest,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidRecordID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid record id",
		http.StatusBadRequest,
	)
	ErrDuplicateRecord = apperror.New(
		apperror.CodeConflict,
		"attendance already recorded for this day and type",
		http.StatusConflict,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid attendance status transition",
		http.StatusBadRequest,
	)
)

// WindowClosed wraps the time-window gate's reason for general attendance.
func WindowClosed(reason string) *apperror.AppError {
	return apperror.New(apperror.CodeWindowClosed, "general attendance "+reason, http.StatusBadRequest)
}
