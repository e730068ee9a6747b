package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorResponse writes the {"error":{"code","message"}} envelope every
// endpoint uses for failures.
func errorResponse(c *gin.Context, code, message string, statusCode int) {
	c.JSON(statusCode, gin.H{
		"error": gin.H{"code": code, "message": message},
	})
}

func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, "NOT_FOUND", message, http.StatusNotFound)
}
