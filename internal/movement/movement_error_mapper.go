package movement

import (
	"errors"
	"strings"

	movementerrors "go-hostel/internal/movement/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError surfaces a lost checkout race on the partial unique
// index as the same conflict the pre-check would have reported.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_movement_logs_open" {
			return movementerrors.ErrAlreadyOut
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") &&
		strings.Contains(err.Error(), "uq_movement_logs_open") {
		return movementerrors.ErrAlreadyOut
	}

	return err
}
