package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"newsportal/internal/models"
)

type Permission string

const (
	PermArticleWrite     Permission = "article:write"
	PermBookmarkToggle   Permission = "bookmark:toggle"
	PermSubmissionCreate Permission = "submission:create"
	PermSubmissionReview Permission = "submission:review"
	PermUploadImage      Permission = "upload:image"
	PermUserAdmin        Permission = "user:admin"
	PermEventWrite       Permission = "event:write"
)

var rolePermissions = map[Permission][]models.Role{
	PermArticleWrite:     {models.RoleAdmin},
	PermBookmarkToggle:   {models.RoleReader, models.RoleInstitution, models.RoleAdmin},
	PermSubmissionCreate: {models.RoleInstitution},
	PermSubmissionReview: {models.RoleAdmin},
	PermUploadImage:      {models.RoleAdmin},
	PermUserAdmin:        {models.RoleAdmin},
	PermEventWrite:       {models.RoleAdmin},
}

// Can reports whether role holds perm. Unknown permissions are denied.
func Can(role models.Role, perm Permission) bool {
	return slices.Contains(rolePermissions[perm], role)
}

// RequirePermission must run after AuthMiddleware.
func RequirePermission(perm Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abort(c, http.StatusUnauthorized, CodeUnauthorized, "Authentication required", "Missing authenticated user")
			return
		}
		if !Can(user.Role, perm) {
			abort(c, http.StatusForbidden, CodePermissionDenied, "You do not have permission to perform this action", string(perm))
			return
		}
		c.Next()
	}
}
