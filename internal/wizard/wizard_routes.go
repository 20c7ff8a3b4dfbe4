package wizard

import (
	"go-onboarding/internal/middleware"
	"go-onboarding/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	drafts := r.Group("/drafts")
	drafts.Use(middleware.AuthMiddleware())
	drafts.Use(middleware.ContextLogger(logger))
	{
		drafts.POST("",
			middleware.RateLimitByUser(2, 10),
			rbac.Authorize(rbacService, "employee", "create"),
			handler.CreateDraft,
		)

		drafts.GET("/:id",
			middleware.RateLimitByUser(10, 30),
			rbac.Authorize(rbacService, "employee", "create"),
			handler.Get,
		)

		drafts.PATCH("/:id",
			middleware.RateLimitByUser(10, 30),
			rbac.Authorize(rbacService, "employee", "create"),
			handler.Patch,
		)

		drafts.POST("/:id/next",
			middleware.RateLimitByUser(10, 30),
			rbac.Authorize(rbacService, "employee", "create"),
			handler.Next,
		)

		drafts.POST("/:id/prev",
			middleware.RateLimitByUser(10, 30),
			rbac.Authorize(rbacService, "employee", "create"),
			handler.Prev,
		)

		drafts.POST("/:id/jump",
			middleware.RateLimitByUser(10, 30),
			rbac.Authorize(rbacService, "employee", "create"),
			handler.Jump,
		)

		drafts.POST("/:id/submit",
			middleware.RateLimitByUser(1, 3),
			rbac.Authorize(rbacService, "employee", "create"),
			middleware.Idempotency(rdb),
			handler.Submit,
		)

		drafts.DELETE("/:id",
			middleware.RateLimitByUser(2, 10),
			rbac.Authorize(rbacService, "employee", "create"),
			handler.Discard,
		)
	}
}
