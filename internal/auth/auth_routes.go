package auth

import (
	"go-hostel/internal/middleware"
	"go-hostel/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", middleware.RateLimitByIP(rate.Limit(1), 5), h.Register)
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Limit(1), 5), h.Login)
		authGroup.POST("/bootstrap-admin", h.BootstrapAdmin)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", h.GetProfile)
			protected.PUT("/profile", h.UpdateProfile)

			admin := protected.Group("")
			admin.Use(rbac.Authorize(enforcer, "users", "manage"))
			{
				admin.GET("/users", h.ListUsers)
				admin.DELETE("/users/:id", h.DeleteUser)
				admin.POST("/create-ward", h.CreateWard)
				admin.POST("/create-cook", h.CreateCook)
			}
		}
	}
}
