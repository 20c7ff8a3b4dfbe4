package errors

import (
	"net/http"

	"go-onboarding/internal/shared/apperror"
)

var (
	ErrDraftNotFound = apperror.New(
		apperror.CodeNotFound,
		"Draft not found or expired",
		http.StatusNotFound,
	)

	ErrInvalidDraftID = apperror.New(
		apperror.CodeInvalidInput,
		"Draft ID tidak valid",
		http.StatusBadRequest,
	)

	ErrInvalidPatch = apperror.New(
		apperror.CodeInvalidInput,
		"Draft patch is not valid JSON",
		http.StatusBadRequest,
	)

	ErrInvalidStep = apperror.New(
		apperror.CodeInvalidInput,
		"Step index is out of range",
		http.StatusBadRequest,
	)

	ErrNotOnReviewStep = apperror.New(
		apperror.CodeInvalidState,
		"Draft must be on the review step before submitting",
		http.StatusConflict,
	)

	ErrSubmitInProgress = apperror.New(
		apperror.CodeConflict,
		"Submission sedang diproses, mohon tunggu",
		http.StatusConflict,
	)
)
