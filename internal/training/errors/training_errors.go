package trainingerrors

import (
	"net/http"

	"hr-admin/internal/shared/apperror"
)

var (
	ErrTrainingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Training not found",
		http.StatusNotFound,
	)
	ErrInvalidTrainingID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid training ID",
		http.StatusBadRequest,
	)
)
