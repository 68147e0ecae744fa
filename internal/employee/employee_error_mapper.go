package employee

import (
	"context"
	"errors"
	"net/http"
	"strings"

	employeeerrors "go-personnel/internal/employee/errors"
	"go-personnel/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			switch pgErr.ConstraintName {
			case "uq_employee_email":
				return employeeerrors.ErrEmailAlreadyExists
			case "uq_employee_passport":
				return employeeerrors.ErrPassportAlreadyExists
			}
			return apperror.Wrap(err, apperror.CodeConflict, "Duplicate value", http.StatusConflict)
		case "23503":
			// A child row pointing at a missing employee is a missing
			// aggregate, not a bad lookup reference.
			switch pgErr.ConstraintName {
			case "fk_education_employee", "fk_experience_employee", "fk_emergency_contact_employee":
				return employeeerrors.ErrEmployeeNotFound
			}
			return employeeerrors.ErrInvalidReference
		}
	}

	if isTransient(err) {
		return apperror.Wrap(
			err,
			apperror.CodeServiceUnavailable,
			"The data store is temporarily unavailable",
			http.StatusServiceUnavailable,
		)
	}

	return err
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "bad connection")
}
