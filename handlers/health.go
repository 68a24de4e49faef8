package handlers

import (
	"net/http"

	"docbook/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness plus the last backend ping, if any ran.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"message":  "Hi, I'm DocBook",
		"backends": utils.GetHealthStatus(),
	})
}
