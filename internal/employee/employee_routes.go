package employee

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	enforcer rbac.Enforcer,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(enforcer, "employee", "read"),
			handler.GetAll,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(enforcer, "employee", "read"),
			handler.GetByID,
		)

		employees.POST("",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(enforcer, "employee", "create"),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(enforcer, "employee", "update"),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(enforcer, "employee", "delete"),
			handler.Delete,
		)

		employees.POST("/upload",
			middleware.RateLimitByUser(0.2, 1),
			rbac.Authorize(enforcer, "employee", "upload"),
			middleware.Idempotency(rdb),
			handler.Upload,
		)
	}
}
