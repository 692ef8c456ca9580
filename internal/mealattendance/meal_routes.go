package mealattendance

import (
	"go-hostel/internal/middleware"
	"go-hostel/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	meals := r.Group("/attendance")
	meals.Use(middleware.AuthMiddleware())
	{
		meals.POST("", rbac.Authorize(enforcer, "meal_attendance", "mark"), h.Mark)
		meals.GET("/my", rbac.Authorize(enforcer, "meal_attendance", "read_own"), h.GetMine)
		meals.GET("/stats", rbac.Authorize(enforcer, "meal_attendance", "read_stats"), h.DailyStats)
	}
}
