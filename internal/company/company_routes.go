package company

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
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	companies.Use(middleware.ContextLogger(logger))
	{
		companies.GET("",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(rbacService, "company", "read"),
			handler.GetAll,
		)

		companies.GET("/locations",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(rbacService, "company", "read"),
			handler.GetLocations,
		)

		companies.GET("/attendance-programs",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(rbacService, "company", "read"),
			handler.GetAttendancePrograms,
		)

		companies.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(rbacService, "company", "read"),
			handler.GetByID,
		)

		companies.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "company", "create"),
			handler.Create,
		)

		companies.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "company", "update"),
			handler.Update,
		)

		companies.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "company", "delete"),
			handler.Delete,
		)
	}
}
