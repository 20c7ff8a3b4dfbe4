package position

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
	positions := r.Group("/positions")
	positions.Use(middleware.AuthMiddleware())
	positions.Use(middleware.ContextLogger(logger))
	{
		positions.GET("",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(rbacService, "position", "read"),
			handler.GetAll,
		)

		positions.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(rbacService, "position", "read"),
			handler.GetByID,
		)

		positions.POST("",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(rbacService, "position", "create"),
			handler.Create,
		)

		positions.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(rbacService, "position", "update"),
			handler.Update,
		)

		positions.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "position", "delete"),
			handler.Delete,
		)
	}
}
