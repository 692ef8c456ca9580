package movement

import (
	"go-hostel/internal/middleware"
	"go-hostel/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer, rdb *redis.Client) {
	logs := r.Group("/movement")
	logs.Use(middleware.AuthMiddleware())
	{
		// retried checkouts (flaky mobile clients) replay instead of
		// tripping the single-open-record conflict
		logs.POST("/checkout",
			rbac.Authorize(enforcer, "movement", "checkout"),
			middleware.Idempotency(rdb),
			h.Checkout,
		)
		logs.POST("/checkin", rbac.Authorize(enforcer, "movement", "checkin"), h.Checkin)
		logs.GET("/logs", h.GetLogs)
	}
}
