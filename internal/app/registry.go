package app

import (
	"database/sql"

	"go-hrms/internal/bootstrap"
	"go-hrms/internal/employee"
	"go-hrms/internal/masterdata"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/middleware"
	"go-hrms/internal/paydetail"
	"go-hrms/internal/payroll"
	"go-hrms/internal/rbac"
	"go-hrms/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(20, 60))

	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	masterdataRepo := masterdata.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	paydetailRepo := paydetail.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	resolver := masterdata.NewResolver(masterdataRepo, logger)
	masterdataService := masterdata.NewService(masterdataRepo, resolver, rdb, logger)
	employeeService := employee.NewService(db, employeeRepo, resolver, counterRepo, outboxRepo, logger)
	paydetailService := paydetail.NewService(paydetailRepo, logger)
	auditLogger := bootstrap.NewStdoutAuditLogger()
	payrollService := payroll.NewService(db, payrollRepo, employeeRepo, paydetailRepo, outboxRepo, auditLogger, logger)

	// --- Handlers ---
	masterdataHandler := masterdata.NewHandler(masterdataService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	paydetailHandler := paydetail.NewHandler(paydetailService, logger)
	payrollHandler := payroll.NewHandler(payrollService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		masterdata.RegisterRoutes(api, masterdataHandler, enforcer, logger)
		employee.RegisterRoutes(api, employeeHandler, enforcer, rdb, logger)
		paydetail.RegisterRoutes(api, paydetailHandler, enforcer, logger)
		payroll.RegisterRoutes(api, payrollHandler, enforcer, rdb, logger)
	}

	return nil
}
