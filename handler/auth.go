package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/r3r-repasses/fipehunter/dto"
)

// AccessKey gates the API behind a shared key sent as X-Access-Key. The
// gate lives entirely in the HTTP layer; extraction code never sees it.
// An empty configured key disables the gate.
func AccessKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}
		provided := c.GetHeader("X-Access-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "ACCESS_DENIED",
				Message: "invalid or missing access key",
				Hint:    "use the key sent in your purchase e-mail",
				Code:    http.StatusUnauthorized,
			})
			return
		}
		c.Next()
	}
}
