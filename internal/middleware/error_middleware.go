package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yigit/wish2work/internal/app/models/dto"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

type errorMapping struct {
	kind   error
	status int
	code   dto.ErrorCode
}

// errorMappings is checked in order; specific errors before the kinds they wrap.
var errorMappings = []errorMapping{
	{apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
	{apperrors.ErrResourceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeConflict},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeBadRequest},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
	{apperrors.ErrAccountDisabled, http.StatusForbidden, dto.ErrorCodeForbidden},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := ErrorDetailFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("requestID", c.GetString(RequestIDKey)).
			Msg("Unhandled error")
	}
	c.JSON(status, dto.NewErrorResponse(detail))
}

// ErrorDetailFor maps err onto an HTTP status and error detail. Unknown errors
// are 500s whose text only appears outside release mode.
func ErrorDetailFor(err error) (int, *dto.ErrorDetail) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.kind) {
			continue
		}
		detail := dto.NewErrorDetail(m.code, err.Error())

		var ce *apperrors.CustomError
		if errors.As(err, &ce) && len(ce.Details) > 0 {
			extra := map[string]interface{}{}
			for k, v := range ce.Details {
				if k == "field" {
					if field, ok := v.(string); ok {
						detail = detail.WithField(field)
					}
					continue
				}
				extra[k] = v
			}
			if len(extra) > 0 {
				detail = detail.WithDetails(extra)
			}
		}
		return m.status, detail
	}

	detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	if step := apperrors.StepOf(err); step != "" {
		detail = detail.WithDetails(map[string]interface{}{"step": step})
	}
	if gin.Mode() != gin.ReleaseMode {
		detail = detail.WithDebugInfo("%v", err)
	}
	return http.StatusInternalServerError, detail
}
