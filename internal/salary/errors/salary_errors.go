package salaryerrors

import (
	"net/http"

	"github.com/ipshare911/Payroll-Management-System/internal/shared/apperror"
)

var (
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary record not found",
		http.StatusNotFound,
	)

	ErrDuplicateRecord = apperror.New(
		apperror.CodeConflict,
		"A salary record with this id already exists",
		http.StatusConflict,
	)

	ErrStoreReadFailure = apperror.New(
		apperror.CodeServiceUnavailable,
		"Reading salary records from the store failed",
		http.StatusServiceUnavailable,
	)

	ErrStoreWriteFailure = apperror.New(
		apperror.CodeServiceUnavailable,
		"Writing salary records to the store failed",
		http.StatusServiceUnavailable,
	)
)
