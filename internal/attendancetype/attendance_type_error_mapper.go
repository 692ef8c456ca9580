package attendancetype

import (
	"errors"
	"strings"

	typederrors "go-hostel/internal/attendancetype/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError surfaces a lost create/create race on the
// (user, date, type) unique index as a conflict instead of a bare 500.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_typed_attendances_user_date_type" {
			return typederrors.ErrDuplicateRecord
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") &&
		strings.Contains(err.Error(), "uq_typed_attendances_user_date_type") {
		return typederrors.ErrDuplicateRecord
	}

	return err
}
