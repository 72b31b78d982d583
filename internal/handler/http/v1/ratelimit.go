package v1

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// IssueRateLimit ограничивает создание обращений на пользователя.
// При ошибке Redis запрос пропускается.
func (h *Handler) IssueRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := identityFromContext(c)
		if h.limiter == nil || identity == nil {
			c.Next()
			return
		}

		log := h.logger.WithField("method", "IssueRateLimit").WithField("user_id", identity.UID)
		decision, err := h.limiter.Allow(c.Request.Context(), identity.UID)
		if err != nil {
			log.WithError(err).Warn("Rate limiter unavailable, letting request through")
			c.Next()
			return
		}

		if !decision.Allowed {
			log.WithField("count", decision.Count).Warn("Issue rate limit exceeded")
			// Округляем вверх: TTL меньше секунды не должен давать Retry-After: 0
			retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}
