package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/civic_gateway/internal/auth"
	"github.com/shenikar/civic_gateway/internal/service"
	"github.com/sirupsen/logrus"
)

const notAuthenticated = "Not authenticated"

// respondError переводит ошибки сервиса в HTTP-ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var validationErr *service.ValidationError
	var authErr *auth.AuthenticationError

	switch {
	case errors.As(err, &validationErr):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Error()})
	case errors.As(err, &authErr):
		log.WithError(err).Warn("Authentication failed")
		unauthorized(c, authErr.Error())
	case errors.Is(err, service.ErrIdentityRequired):
		log.Warn("Identity missing on protected route")
		unauthorized(c, notAuthenticated)
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: message})
}
