package masterdataerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrUnknownTable = apperror.New(
		apperror.CodeNotFound,
		"Unknown master data table",
		http.StatusNotFound,
	)
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Master record not found",
		http.StatusNotFound,
	)
	ErrDuplicateValue = apperror.New(
		apperror.CodeConflict,
		"A master record with this value already exists",
		http.StatusConflict,
	)
)
