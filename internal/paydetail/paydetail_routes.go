package paydetail

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
	group := r.Group("/employees")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("/:id/pay-detail",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(enforcer, "paydetail", "read"),
			handler.GetByEmployeeID,
		)
	}
}
