package routes

import (
	"newsportal/internal/controllers"
	"newsportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterSubmissionRoutes(router *gin.Engine, submissionController *controllers.SubmissionController, authMiddleware gin.HandlerFunc) {
	create := middleware.RequirePermission(middleware.PermSubmissionCreate)
	review := middleware.RequirePermission(middleware.PermSubmissionReview)

	submissionRoutes := router.Group("/api/submissions")
	submissionRoutes.Use(authMiddleware)
	{
		submissionRoutes.POST("", create, submissionController.CreateSubmission)
		submissionRoutes.GET("/mine", create, submissionController.ListMine)

		submissionRoutes.GET("", review, submissionController.ListPending)
		submissionRoutes.PUT("/:id", review, submissionController.PublishSubmission)
		submissionRoutes.GET("/raw-articles", review, submissionController.ListRawArticles)
		submissionRoutes.PUT("/raw-articles/:id", review, submissionController.PublishRawArticle)
	}
}
