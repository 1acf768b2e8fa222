package response

import "github.com/gin-gonic/gin"

// The API contract uses terse single-line bodies: {"error": "..."} for
// failures and {"message": "...", ...} for successes. Internal details never
// leak into a response body.

// Error writes a failure body.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// AbortError writes a failure body and stops the handler chain (middleware use).
func AbortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// Message writes a success body with just a message.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}
