package api

import (
	"net/http"

	"github.com/Domenick1991/flynow/internal/service/auth"
	"github.com/gin-gonic/gin"
)

// TokenAuth gates every protected route. The token travels in the
// accessToken header; a query parameter is accepted as a fallback.
func TokenAuth(service auth.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("accessToken")
		if token == "" {
			token = c.Query("accessToken")
		}

		if err := service.Authenticate(c.Request.Context(), token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": unauthorisedMessage})
			return
		}
		c.Next()
	}
}
