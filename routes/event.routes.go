package routes

import (
	"newsportal/internal/controllers"
	"newsportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterEventRoutes(router *gin.Engine, eventController *controllers.EventController, authMiddleware gin.HandlerFunc) {
	router.GET("/api/events", eventController.ListEvents)

	eventRoutesPrivate := router.Group("/api/events")
	eventRoutesPrivate.Use(authMiddleware, middleware.RequirePermission(middleware.PermEventWrite))
	{
		eventRoutesPrivate.POST("", eventController.CreateEvent)
		eventRoutesPrivate.DELETE("/:id", eventController.DeleteEvent)
	}
}
