package paydetailerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrPayDetailNotFound = apperror.New(
		apperror.CodeNotFound,
		"Pay detail not found for employee",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
