package routes

import (
	"newsportal/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterHealthRoutes(router *gin.Engine, healthController *controllers.HealthController) {
	router.GET("/healthz", healthController.Health)
}
