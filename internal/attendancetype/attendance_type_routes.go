package attendancetype

import (
	"go-hostel/internal/middleware"
	"go-hostel/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	types := r.Group("/attendance-types")
	types.Use(middleware.AuthMiddleware())
	{
		types.POST("/general", rbac.Authorize(enforcer, "typed_attendance", "mark_general"), h.MarkGeneral)
		types.POST("/ward", rbac.Authorize(enforcer, "typed_attendance", "post_ward"), h.PostWard)
		types.GET("/my", h.GetMine)
		types.GET("/all", rbac.Authorize(enforcer, "typed_attendance", "read_all"), h.GetAll)
		types.PATCH("/:id/verify", rbac.Authorize(enforcer, "typed_attendance", "verify"), h.Verify)
		types.PATCH("/:id/dismiss", rbac.Authorize(enforcer, "typed_attendance", "verify"), h.Dismiss)
	}
}
