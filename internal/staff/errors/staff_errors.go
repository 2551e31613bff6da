package stafferrors

import (
	"net/http"

	"go-shopops/internal/shared/apperror"
)

var (
	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound,
		"staff member not found",
		http.StatusNotFound,
	)
	ErrStaffNameTaken = apperror.New(
		apperror.CodeConflict,
		"a staff member with this name already exists",
		http.StatusConflict,
	)
	ErrInvalidStaffID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid staff id",
		http.StatusBadRequest,
	)
	ErrExecutiveNeedsRatio = apperror.New(
		apperror.CodeInvalidInput,
		"an executive requires a ratio greater than zero",
		http.StatusBadRequest,
	)
	ErrContractorNeedsRate = apperror.New(
		apperror.CodeInvalidInput,
		"a contract worker requires an allowance_rate greater than zero",
		http.StatusBadRequest,
	)
)
