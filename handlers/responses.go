package handlers

import "github.com/gin-gonic/gin"

// Framework-level error bodies. These are deliberately distinct from the
// per-entity {success, message, ...} envelope: the admin console treats
// them as transport errors, not operation results.

func badRequestBody() gin.H {
	return gin.H{
		"error":   "Bad Request",
		"message": "The request could not be understood by the server",
	}
}

func notFoundBody() gin.H {
	return gin.H{
		"error":   "Not Found",
		"message": "The requested resource was not found",
	}
}

func internalErrorBody() gin.H {
	return gin.H{
		"error":   "Internal Server Error",
		"message": "An unexpected error occurred",
	}
}
