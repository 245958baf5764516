package nitaqat

import (
	"errors"

	nitaqaterrors "ksa-hris/internal/nitaqat/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nitaqaterrors.ErrSnapshotNotFound
	}
	return err
}
