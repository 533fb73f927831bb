package controllers

import (
	"pousada/errors"
	"pousada/response"

	"github.com/gin-gonic/gin"
)

// handleServiceError map AppError sang response tương ứng
func handleServiceError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeDBNotFound:
		response.NotFound(c)
	case errors.ErrCodeConflict:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidEmail,
		errors.ErrCodeInvalidPhone:
		response.BadRequest(c, appErr.Message)
	default:
		response.ServerError(c)
	}
}
