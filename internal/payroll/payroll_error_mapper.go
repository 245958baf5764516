package payroll

import (
	"errors"
	"strings"

	payrollerrors "ksa-hris/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrBatchNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == BatchUniqueConstraint {
			return payrollerrors.ErrBatchAlreadyExists
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(strings.ToLower(err.Error()), BatchUniqueConstraint) {
		return payrollerrors.ErrBatchAlreadyExists
	}

	return err
}
