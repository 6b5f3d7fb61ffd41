package routes

import (
	"newsportal/internal/controllers"
	"newsportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController, authMiddleware gin.HandlerFunc) {
	userRoutesPublic := router.Group("/api/users")
	{
		userRoutesPublic.POST("/register", userController.Register)
		userRoutesPublic.POST("/login", userController.Login)
		userRoutesPublic.GET("/verify-email/:token", userController.VerifyEmailLink)
		userRoutesPublic.POST("/verify-email-otp", userController.VerifyEmailOTP)
		userRoutesPublic.POST("/resend-verification", userController.ResendVerification)
		userRoutesPublic.POST("/forgot-password", userController.ForgotPassword)
		userRoutesPublic.POST("/reset-password/:token", userController.ResetPassword)
	}

	userRoutesPrivate := router.Group("/api/users")
	userRoutesPrivate.Use(authMiddleware)
	{
		userRoutesPrivate.GET("/me", userController.GetCurrentUser)
		userRoutesPrivate.GET("/bookmarks", userController.GetBookmarks)

		admin := middleware.RequirePermission(middleware.PermUserAdmin)
		userRoutesPrivate.GET("", admin, userController.ListUsers)
		userRoutesPrivate.PUT("/:id/role", admin, userController.UpdateUserRole)
		userRoutesPrivate.DELETE("/:id", admin, userController.DeleteUser)
	}
}
