package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rm-hull/trip-cost-calculator/internal/obs"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags each request with an ID, taken from the caller when
// present, so that collaborator timings can be correlated in the logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(obs.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
