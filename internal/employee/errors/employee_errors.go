package employeeerrors

import (
	"net/http"

	"go-personnel/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrPassportAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same passport number already exists",
		http.StatusConflict,
	)
	ErrInvalidReference = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced position, department or employment type does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
