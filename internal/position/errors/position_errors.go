package errors

import (
	"net/http"

	"go-onboarding/internal/shared/apperror"
)

var ErrPositionNotFound = apperror.New(
	apperror.CodeNotFound,
	"Position not found",
	http.StatusNotFound,
)
