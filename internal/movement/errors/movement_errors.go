package movementerrors

import (
	"net/http"

	"go-hostel/internal/shared/apperror"
)

var (
	ErrMissingReason = apperror.New(
		apperror.CodeInvalidInput,
		"reason is required to check out",
		http.StatusBadRequest,
	)
	ErrAlreadyOut = apperror.New(
		apperror.CodeInvalidState,
		"an open checkout already exists; check in first",
		http.StatusConflict,
	)
	ErrNoActiveCheckout = apperror.New(
		apperror.CodeInvalidState,
		"no open checkout to check in from",
		http.StatusConflict,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
)
