package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/civic_gateway/internal/auth"
	"github.com/shenikar/civic_gateway/internal/models"
)

const identityKey = "identity"

// RequireAuth - обязательная аутентификация: нет токена или он невалиден -> 401
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := h.logger.WithField("path", c.FullPath())
		result := auth.Authenticate(c.Request.Context(), h.verifier, c.GetHeader("Authorization"))

		switch result.State {
		case auth.Verified:
			c.Set(identityKey, result.Claims)
			c.Next()
		case auth.NoToken:
			log.Warn("Bearer token missing from request")
			unauthorized(c, notAuthenticated)
		default:
			log.WithError(result.Err).Warn("Invalid bearer token")
			unauthorized(c, result.Err.Error())
		}
	}
}

// OptionalAuth - невалидный токен не прерывает запрос, он идет как анонимный
func (h *Handler) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		result := auth.Authenticate(c.Request.Context(), h.verifier, c.GetHeader("Authorization"))

		switch result.State {
		case auth.Verified:
			c.Set(identityKey, result.Claims)
		case auth.Invalid:
			h.logger.WithField("path", c.FullPath()).WithError(result.Err).Debug("Ignoring invalid token on optional route")
		}
		c.Next()
	}
}

// identityFromContext возвращает nil для анонимного запроса
func identityFromContext(c *gin.Context) *models.Claims {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*models.Claims)
	return claims
}
