package eoserrors

import (
	"ksa-hris/internal/shared/apperror"
	"net/http"
)

var (
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Termination reason is required",
		http.StatusBadRequest,
	)
	ErrUnknownReason = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown termination reason",
		http.StatusBadRequest,
	)
	ErrUnknownContractType = apperror.New(
		apperror.CodeInvalidInput,
		"Contract type must be limited or unlimited",
		http.StatusBadRequest,
	)
	ErrTerminationBeforeHire = apperror.New(
		apperror.CodeInvalidInput,
		"Termination date must not be before hire date",
		http.StatusBadRequest,
	)
	ErrNegativeSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Basic salary must not be negative",
		http.StatusBadRequest,
	)
	ErrNegativeDebt = apperror.New(
		apperror.CodeInvalidInput,
		"Outstanding debt amounts must not be negative",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrCalculationNotFound = apperror.New(
		apperror.CodeNotFound,
		"End-of-service calculation not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"End-of-service calculation cannot move to the requested status",
		http.StatusUnprocessableEntity,
	)
)
