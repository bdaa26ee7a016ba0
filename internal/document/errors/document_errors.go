package documenterrors

import (
	"net/http"

	"hr-admin/internal/shared/apperror"
)

var (
	ErrNoFile = apperror.New(
		apperror.CodeInvalidInput,
		"No file provided",
		http.StatusBadRequest,
	)
	ErrStoreFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not store uploaded file",
		http.StatusInternalServerError,
	)
)
