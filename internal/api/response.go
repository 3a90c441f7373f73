package api

import "github.com/gin-gonic/gin"

// respondError writes the error envelope every endpoint shares.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}
