package importererrors

import (
	"net/http"

	"github.com/ipshare911/Payroll-Management-System/internal/shared/apperror"
)

var (
	ErrUnsupportedFileType = apperror.New(
		apperror.CodeInvalidInput,
		"Unsupported file type; upload an .xlsx workbook",
		http.StatusBadRequest,
	)

	ErrUnreadableWorkbook = apperror.New(
		apperror.CodeInvalidInput,
		"The uploaded file could not be read as a workbook",
		http.StatusBadRequest,
	)

	ErrEmptyWorkbook = apperror.New(
		apperror.CodeInvalidInput,
		"The workbook contains no worksheet with data",
		http.StatusBadRequest,
	)

	ErrHeaderNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"No header row found in the first 10 rows; the sheet needs a 姓名 or 部门 column",
		http.StatusBadRequest,
	)

	ErrNoValidRows = apperror.New(
		apperror.CodeInvalidInput,
		"A header row was found but no data row produced a usable record; check that rows carry a 姓名 value",
		http.StatusBadRequest,
	)

	ErrImportInProgress = apperror.New(
		apperror.CodeConflict,
		"Another import is still processing; wait for it to finish",
		http.StatusConflict,
	)
)
