package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
	"github.com/madinatul-uloom/madrasah-admin-api/internal/service"
	appErrors "github.com/madinatul-uloom/madrasah-admin-api/pkg/errors"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/response"
)

// RequireSection gates a route group behind the section permission table. The
// check runs on every request against the caller's current role, so a menu
// cached by the client grants nothing on its own. Missing or malformed claims
// fail closed.
func RequireSection(access *service.AccessService, section models.Section) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims, ok := claimsValue.(*models.JWTClaims)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		if !access.IsPermitted(claims.Role, section) {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "section not permitted for role"))
			c.Abort()
			return
		}
		c.Next()
	}
}
