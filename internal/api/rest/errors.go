package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/buxdao/holder-bot/internal/api/middleware"
	"github.com/buxdao/holder-bot/internal/api/shared/errors"
	"github.com/buxdao/holder-bot/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errors.Response{Error: errors.NewBadRequestError(message, details...)})
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, errors.Response{Error: errors.NewValidationError(message)})
}

// respondServiceError maps err to a status and logs server side failures
func respondServiceError(c *gin.Context, err error, fields ...zap.Field) {
	status, apiErr := errors.FromDomainError(err)
	if status >= http.StatusInternalServerError {
		fields = append(fields,
			zap.String("request_id", c.GetString(middleware.REQUEST_ID_KEY)),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status))
		logger.ErrorCtx(c.Request.Context(), err, fields...)
	}
	c.JSON(status, errors.Response{Error: apiErr})
}
