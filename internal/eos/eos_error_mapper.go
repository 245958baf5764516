package eos

import (
	"errors"

	eoserrors "ksa-hris/internal/eos/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return eoserrors.ErrCalculationNotFound
	}
	return err
}
