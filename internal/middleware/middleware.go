package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"newsportal/internal/auth"
	"newsportal/internal/models"
)

const (
	userIDKey = "user_id"
	userKey   = "user"

	CodeUnauthorized     = "UNAUTHORIZED"
	CodeEmailNotVerified = "EMAIL_NOT_VERIFIED"
	CodePermissionDenied = "PERMISSION_DENIED"
)

// UserFinder loads the account behind a token.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// AuthMiddleware validates the bearer token, loads the user and rejects
// accounts whose email is not verified.
func AuthMiddleware(tokens *auth.TokenManager, users UserFinder, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, CodeUnauthorized, "Authorization header is required", "Missing authorization token")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abort(c, http.StatusUnauthorized, CodeUnauthorized, "Invalid authorization header format", "Use format: Bearer {token}")
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			abort(c, http.StatusUnauthorized, CodeUnauthorized, "Invalid or expired token", err.Error())
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abort(c, http.StatusUnauthorized, CodeUnauthorized, "Invalid token claims", "User no longer exists")
				return
			}
			log.WithError(err).WithField("user_id", claims.UserID).Error("failed to load user for token")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Internal server error",
			})
			return
		}

		if !user.EmailVerified {
			abort(c, http.StatusForbidden, CodeEmailNotVerified, "Email address is not verified", "Verify your email before continuing")
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

// SetCurrentUser stores the authenticated user on the request context.
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(userIDKey, user.ID)
	c.Set(userKey, user)
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

func abort(c *gin.Context, status int, code, message, detail string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status":  "error",
		"code":    code,
		"message": message,
		"error":   detail,
	})
}
