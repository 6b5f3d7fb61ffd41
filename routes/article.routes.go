package routes

import (
	"newsportal/internal/controllers"
	"newsportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterArticleRoutes(router *gin.Engine, articleController *controllers.ArticleController, authMiddleware gin.HandlerFunc) {
	articleRoutesPublic := router.Group("/api/articles")
	{
		articleRoutesPublic.GET("", articleController.ListArticles)
		articleRoutesPublic.GET("/trending", articleController.GetTrendingArticles)
		articleRoutesPublic.GET("/:id", articleController.GetArticleByID)
	}
	router.GET("/api/search", articleController.SearchArticles)

	articleRoutesPrivate := router.Group("/api/articles")
	articleRoutesPrivate.Use(authMiddleware)
	{
		articleRoutesPrivate.POST("/:id/bookmark", middleware.RequirePermission(middleware.PermBookmarkToggle), articleController.ToggleBookmark)

		write := middleware.RequirePermission(middleware.PermArticleWrite)
		articleRoutesPrivate.POST("", write, articleController.CreateArticle)
		articleRoutesPrivate.PUT("/:id", write, articleController.UpdateArticle)
		articleRoutesPrivate.DELETE("/:id", write, articleController.DeleteArticle)
	}
}
