package routes

import (
	"newsportal/internal/controllers"
	"newsportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterWordSubmissionRoutes(router *gin.Engine, wordSubmissionController *controllers.WordSubmissionController, authMiddleware gin.HandlerFunc) {
	review := middleware.RequirePermission(middleware.PermSubmissionReview)

	wordRoutes := router.Group("/api/word-submissions")
	wordRoutes.Use(authMiddleware)
	{
		wordRoutes.POST("", middleware.RequirePermission(middleware.PermSubmissionCreate), wordSubmissionController.UploadWordSubmission)
		wordRoutes.GET("", review, wordSubmissionController.ListWordSubmissions)
		wordRoutes.GET("/:id", review, wordSubmissionController.GetWordSubmission)
		wordRoutes.GET("/:id/file", review, wordSubmissionController.DownloadWordSubmission)
		wordRoutes.PUT("/:id/status", review, wordSubmissionController.ReviewWordSubmission)
		wordRoutes.POST("/:id/publish", review, wordSubmissionController.PublishWordSubmission)
	}
}
