package rbac

import (
	"net/http"

	"go-hostel/internal/shared/apperror"
	"go-hostel/internal/shared/response"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

// Authorize gates a route on the caller's role. The role is set by the auth
// middleware; a missing role means the route was wired without auth, which
// is a registry bug and surfaces as 401.
func Authorize(enforcer *casbin.Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := enforcer.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, err.Error(), nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c,
				apperror.ErrForbidden.HTTPStatus,
				apperror.ErrForbidden.Code,
				apperror.ErrForbidden.Message,
				resource+":"+action,
			)
			c.Abort()
			return
		}

		c.Next()
	}
}
