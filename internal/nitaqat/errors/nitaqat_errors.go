package nitaqaterrors

import (
	"ksa-hris/internal/shared/apperror"
	"net/http"
)

var (
	ErrSnapshotNotFound = apperror.New(
		apperror.CodeNotFound,
		"No Nitaqat snapshot has been calculated for this company",
		http.StatusNotFound,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidCalculationDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid calculation_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
