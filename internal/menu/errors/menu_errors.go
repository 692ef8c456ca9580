package menuerrors

import (
	"net/http"

	"go-hostel/internal/shared/apperror"
)

var (
	ErrDuplicateMenu = apperror.New(
		apperror.CodeConflict,
		"menu already exists for this day",
		http.StatusConflict,
	)
	ErrEmptyMenu = apperror.New(
		apperror.CodeInvalidInput,
		"at least one meal must be provided",
		http.StatusBadRequest,
	)
)
