package masterdata

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	enforcer rbac.Enforcer,
	logger *zap.Logger,
) {
	master := r.Group("/master")
	master.Use(middleware.AuthMiddleware())
	master.Use(middleware.ContextLogger(logger))
	{
		master.GET("/:table/options",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(enforcer, "masterdata", "read"),
			handler.GetOptions,
		)

		master.POST("/:table",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(enforcer, "masterdata", "create"),
			handler.Create,
		)
	}
}
