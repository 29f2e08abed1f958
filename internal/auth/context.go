package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxAdminID    = "admin_id"
	CtxAdminEmail = "admin_email"
)

// AdminID returns the authenticated admin set by one of the admin middlewares:
// the Firebase UID, or "api-key" for key based access.
func AdminID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxAdminID))
}

func AdminEmail(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxAdminEmail))
}
