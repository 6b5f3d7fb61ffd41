package routes

import (
	"newsportal/internal/controllers"
	"newsportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterUploadRoutes mounts the image upload endpoint. When localDir is
// set, stored images are also served from /uploads.
func RegisterUploadRoutes(router *gin.Engine, uploadController *controllers.UploadController, authMiddleware gin.HandlerFunc, localDir string) {
	router.POST("/api/upload", authMiddleware, middleware.RequirePermission(middleware.PermUploadImage), uploadController.UploadImage)

	if localDir != "" {
		router.Static("/uploads", localDir)
	}
}
