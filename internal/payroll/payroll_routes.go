package payroll

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
	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware())
	payroll.Use(middleware.ContextLogger(logger))
	{
		payroll.POST("/generate",
			middleware.RateLimitByUser(0.2, 1),
			rbac.Authorize(enforcer, "payroll", "generate"),
			middleware.Idempotency(rdb),
			handler.Generate,
		)

		payroll.POST("/upload",
			middleware.RateLimitByUser(0.2, 1),
			rbac.Authorize(enforcer, "payroll", "upload"),
			middleware.Idempotency(rdb),
			handler.Upload,
		)

		payroll.GET("/runs",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(enforcer, "payroll", "read"),
			handler.ListRuns,
		)

		payroll.GET("/runs/:id/slips",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(enforcer, "payroll", "read"),
			handler.ListSlipsByRun,
		)

		payroll.GET("/slips/:id",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(enforcer, "payroll", "read"),
			handler.GetSlip,
		)

		payroll.PATCH("/slips/:id",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(enforcer, "payroll", "recalculate"),
			handler.Recalculate,
		)

		payroll.GET("/slips/:id/payslip",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(enforcer, "payroll", "read"),
			handler.Payslip,
		)

		payroll.POST("/slips/:id/payslip",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(enforcer, "payroll", "read"),
			handler.RequestPayslip,
		)
	}
}
