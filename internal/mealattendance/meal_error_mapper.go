package mealattendance

import (
	"errors"
	"strings"

	mealerrors "go-hostel/internal/mealattendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError surfaces a lost create/create race on the
// (user, date) unique index as a conflict instead of a bare 500.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_meal_attendances_user_date" {
			return mealerrors.ErrDuplicateRecord
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") &&
		strings.Contains(err.Error(), "uq_meal_attendances_user_date") {
		return mealerrors.ErrDuplicateRecord
	}

	return err
}
