package v1

import (
	"github.com/gin-gonic/gin"
)

// NewRouter создает gin.Engine с общими middleware и маршрутами
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(
		RequestID(),
		RequestLogger(h.logger),
		Recovery(h.logger),
		CORS(h.cfg.AllowedOrigins),
	)
	h.RegisterRoutes(router)
	return router
}

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	// Публичные маршруты
	r.GET("/", h.home)
	r.GET("/health", h.healthCheck)
	r.GET("/departments", h.listDepartments)

	// Маршруты, требующие токен
	authGroup := r.Group("/auth", h.RequireAuth())
	{
		authGroup.GET("/verify", h.verifyToken)
		authGroup.GET("/profile", h.getProfile)
	}
	r.GET("/user/issues", h.RequireAuth(), h.listUserIssues)

	issues := r.Group("/issues")
	{
		issues.GET("", h.OptionalAuth(), h.listIssues)
		issues.POST("", h.RequireAuth(), h.IssueRateLimit(), h.createIssue)
	}
}
