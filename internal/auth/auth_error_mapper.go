package auth

import (
	"errors"
	"strings"

	autherrors "go-hostel/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_users_email" {
			return autherrors.ErrEmailTaken
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") &&
		strings.Contains(err.Error(), "uq_users_email") {
		return autherrors.ErrEmailTaken
	}

	return err
}
