package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness only; it deliberately does not touch the store
// or any backing service.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "HMI API is running",
		"status":  "healthy",
	})
}
