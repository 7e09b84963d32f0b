package salary

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	salaryerrors "github.com/ipshare911/Payroll-Management-System/internal/salary/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapReadError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryerrors.ErrRecordNotFound
	}
	return salaryerrors.ErrStoreReadFailure
}

func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryerrors.ErrRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return salaryerrors.ErrDuplicateRecord
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return salaryerrors.ErrDuplicateRecord
	}

	return salaryerrors.ErrStoreWriteFailure
}
