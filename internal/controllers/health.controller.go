package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Pinger reports whether a backing store is reachable.
type Pinger func() error

type HealthController struct {
	ping Pinger
	log  *logrus.Logger
}

func NewHealthController(ping Pinger, log *logrus.Logger) *HealthController {
	return &HealthController{ping: ping, log: log}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} map[string]interface{} "Database unavailable"
// @Router /healthz [get]
func (hc *HealthController) Health(c *gin.Context) {
	if err := hc.ping(); err != nil {
		hc.log.WithError(err).Warn("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "error",
			"message":  "Database unavailable",
			"database": false,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"message":  "Service is healthy",
		"database": true,
	})
}
