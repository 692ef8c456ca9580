package menu

import (
	"go-hostel/internal/middleware"
	"go-hostel/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	menus := r.Group("/menu")
	menus.Use(middleware.AuthMiddleware())
	{
		menus.GET("", h.Get)
		menus.POST("", rbac.Authorize(enforcer, "menu", "write"), h.Upsert)
	}
}
