package apihandlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const requestIDKey = "request_id"

// RequestID tags every request with an id for log correlation. An inbound
// X-Request-ID is honored, otherwise one is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// RequestIDFrom returns the request id set by the RequestID middleware, or
// an empty string.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// SecretGate rejects any request whose X-API-Secret header does not exactly
// equal the configured secret. No downstream handler runs on mismatch.
func SecretGate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader("X-API-Secret")
		if secret == "" || supplied != secret {
			log.WithFields(log.Fields{
				"path":       c.Request.URL.Path,
				"request_id": RequestIDFrom(c),
			}).Warn("Rejected request: invalid API secret")
			Unauthorized(c, "Invalid or missing API secret")
			c.Abort()
			return
		}
		c.Next()
	}
}
