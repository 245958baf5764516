package gosierrors

import (
	"ksa-hris/internal/shared/apperror"
	"net/http"
)

var (
	ErrNegativeBasicSalary = apperror.New(apperror.CodeInvalidInput, "Basic salary must not be negative", http.StatusBadRequest)
	ErrNegativeHousing     = apperror.New(apperror.CodeInvalidInput, "Housing allowance must not be negative", http.StatusBadRequest)
)
