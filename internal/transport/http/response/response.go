package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Result wraps a successful payload the way every read endpoint returns it.
func Result(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, gin.H{"result": payload})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func InvalidJSON(c *gin.Context) {
	Error(c, http.StatusBadRequest, "Invalid json")
}

func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}
