package exporterrors

import (
	"net/http"

	"github.com/ipshare911/Payroll-Management-System/internal/shared/apperror"
)

var (
	ErrUnknownMode = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown export mode; use detail, by_person or by_department",
		http.StatusBadRequest,
	)

	ErrUnknownColumn = apperror.New(
		apperror.CodeInvalidInput,
		"The columns parameter names a field that does not exist",
		http.StatusBadRequest,
	)

	ErrNothingToExport = apperror.New(
		apperror.CodeNotFound,
		"No records match the current filter",
		http.StatusNotFound,
	)

	ErrWorkbookBuildFailure = apperror.New(
		apperror.CodeInternalError,
		"The export workbook could not be written",
		http.StatusInternalServerError,
	)
)
