package inventoryerrors

import (
	"net/http"

	"go-shopops/internal/shared/apperror"
)

var (
	ErrOutboundNotFound = apperror.New(
		apperror.CodeNotFound,
		"outbound part record not found",
		http.StatusNotFound,
	)
	ErrInvalidOutboundID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid outbound part id",
		http.StatusBadRequest,
	)
	ErrInvalidTaskID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid task id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrAlreadyVoided = apperror.New(
		apperror.CodeInvalidState,
		"outbound part record is already voided",
		http.StatusBadRequest,
	)
)
