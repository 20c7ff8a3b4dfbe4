package department

import (
	"go-onboarding/internal/middleware"
	"go-onboarding/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	departments := r.Group("/companies/:companyId/departments")
	departments.Use(middleware.AuthMiddleware())
	departments.Use(middleware.ContextLogger(logger))
	{
		departments.GET("",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(rbacService, "department", "read"),
			handler.GetAll,
		)

		departments.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(rbacService, "department", "read"),
			handler.GetByID,
		)

		departments.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "department", "create"),
			handler.Create,
		)

		departments.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "department", "update"),
			handler.Update,
		)

		departments.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "department", "delete"),
			handler.Delete,
		)
	}
}
