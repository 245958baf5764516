package payrollerrors

import (
	"net/http"

	"ksa-hris/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrMonthRequired = apperror.New(
		apperror.CodeInvalidInput,
		"month is required",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrBatchAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"payroll batch already exists for this month",
		http.StatusConflict,
	)
	ErrBatchCreationInProgress = apperror.New(
		apperror.CodeConflict,
		"payroll batch for this month is being created",
		http.StatusConflict,
	)
	ErrBatchNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll batch not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid payroll status transition",
		http.StatusUnprocessableEntity,
	)
	ErrBatchNotProcessed = apperror.New(
		apperror.CodeInvalidState,
		"payslips are only available once the batch is processed",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidSalaryRecord = apperror.New(
		apperror.CodeInvalidInput,
		"salary record has negative components",
		http.StatusUnprocessableEntity,
	)
)
