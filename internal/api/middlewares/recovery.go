package middlewares

import (
	"net/http"

	"gravity-server/internal/api/models"

	"github.com/gin-gonic/gin"
)

// Recovery middleware recovers from panics
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if err, ok := recovered.(string); ok {
			resp := models.Err(models.ErrCodeInternalError, "Internal server error")
			resp.Error.Details = err
			c.JSON(http.StatusInternalServerError, resp)
		}
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
