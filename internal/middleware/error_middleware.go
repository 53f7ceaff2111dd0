package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/devcamper/internal/app/models/dto"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
	"github.com/yigit/devcamper/internal/pkg/logger"
)

// HandleAPIError maps an application error to a status code and error body
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorToDetail(err)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func errorToDetail(err error) (int, *dto.ErrorDetail) {
	message := func(fallback string) string {
		if ce, ok := apperrors.AsCustomError(err); ok {
			return ce.Error()
		}
		return fallback
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		if ce, ok := apperrors.AsCustomError(err); ok && len(ce.Details) > 0 {
			detail = detail.WithDetails(ce.Details)
		}
		return http.StatusBadRequest, detail
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, message("Bad request"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Resource not found"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, message("Permission denied"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
	}
}
