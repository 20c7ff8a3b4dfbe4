package app

import (
	"database/sql"
	"path/filepath"

	"go-onboarding/internal/auth"
	"go-onboarding/internal/company"
	"go-onboarding/internal/department"
	"go-onboarding/internal/draft"
	"go-onboarding/internal/employee"
	"go-onboarding/internal/messaging/kafka"
	"go-onboarding/internal/position"
	"go-onboarding/internal/rbac"
	"go-onboarding/internal/rbac/infra"
	"go-onboarding/internal/refdata"
	"go-onboarding/internal/shared/counter"
	"go-onboarding/internal/submission"
	"go-onboarding/internal/wizard"

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

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	positionRepo := position.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	draftStore := draft.NewRedisStore(rdb, draft.DefaultSessionTTL)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("config", "rbac_model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo, rbacService, employeeRepo)
	companyService := company.NewService(db, companyRepo)
	departmentService := department.NewService(db, departmentRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo)
	positionService := position.NewService(db, positionRepo, rdb)

	refdataLoader := refdata.NewLoader(companyRepo, departmentRepo, rdb)
	pipeline := submission.NewPipeline(employee.NewSubmissionAdapter(employeeService))
	wizardService := wizard.NewService(draftStore, refdataLoader, pipeline, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	companyHandler := company.NewHandler(companyService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	positionHandler := position.NewHandler(positionService)
	wizardHandler := wizard.NewHandler(wizardService, rdb)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		company.RegisterRoutes(api, companyHandler, rbacService, logger)
		department.RegisterRoutes(api, departmentHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		position.RegisterRoutes(api, positionHandler, rbacService, logger)
		wizard.RegisterRoutes(api, wizardHandler, rbacService, rdb, logger)
	}

	rbac.RegisterRoutes(router, rbacHandler)

	return nil
}
