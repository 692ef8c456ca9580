package menu

import (
	"errors"
	"strings"

	menuerrors "go-hostel/internal/menu/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_menus_date" {
			return menuerrors.ErrDuplicateMenu
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") &&
		strings.Contains(err.Error(), "uq_menus_date") {
		return menuerrors.ErrDuplicateMenu
	}

	return err
}
