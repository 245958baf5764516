package employee

import (
	"errors"

	employeeerrors "ksa-hris/internal/employee/errors"

	"gorm.io/gorm"
)

// MapRepositoryError is used by packages that look employees up by id.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	return err
}
