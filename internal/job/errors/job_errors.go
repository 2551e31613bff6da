package joberrors

import (
	"net/http"

	"go-shopops/internal/shared/apperror"
)

var (
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"job not found",
		http.StatusNotFound,
	)
	ErrInvalidJobID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid job id",
		http.StatusBadRequest,
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
	ErrAlreadyCompleted = apperror.New(
		apperror.CodeInvalidState,
		"job is already completed",
		http.StatusBadRequest,
	)
	ErrNotCompleted = apperror.New(
		apperror.CodeInvalidState,
		"job is not completed",
		http.StatusBadRequest,
	)
	ErrEditCompletedJob = apperror.New(
		apperror.CodeInvalidState,
		"a completed job must be reopened before editing",
		http.StatusBadRequest,
	)
)
