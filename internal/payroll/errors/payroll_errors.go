package payrollerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll run not found",
		http.StatusNotFound,
	)
	ErrSlipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll slip not found",
		http.StatusNotFound,
	)
	ErrRunCreateFailed = apperror.New(
		apperror.CodeInternalError,
		"Payroll run could not be created",
		http.StatusInternalServerError,
	)
	ErrInvalidSlipID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payroll slip ID",
		http.StatusBadRequest,
	)
	ErrSlipForbidden = apperror.New(
		apperror.CodeForbidden,
		"Payroll slip belongs to another employee",
		http.StatusForbidden,
	)
)
