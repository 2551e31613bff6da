package settlementerrors

import (
	"net/http"

	"go-shopops/internal/shared/apperror"
)

var (
	ErrDataUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"settlement data store is unreachable, try again shortly",
		http.StatusServiceUnavailable,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start must be before or equal to end",
		http.StatusBadRequest,
	)
)
