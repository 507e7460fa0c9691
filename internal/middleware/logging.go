package middleware

import (
	"strconv"     // Request id formatting
	"sync/atomic" // Per-process request sequence
	"time"        // Entry timestamp and duration

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RequestIDKey is the gin context key carrying the per-request correlation id
const RequestIDKey = "requestID"

// Monotonic per-process sequence; ids are for log correlation only and
// make no global-uniqueness promise
var requestSeq uint64

// generateRequestID returns REQ-<unix-millis>-<sequence>
func generateRequestID() string {
	seq := atomic.AddUint64(&requestSeq, 1)
	return "REQ-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + strconv.FormatUint(seq, 10)
}

// RequestLogger logs one line per request with method, path, status, duration
// and request id. Severity is banded by status class: error for 5xx, warn for
// 4xx, info otherwise. Handler errors collected in the gin context get an
// additional error line.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()              // Capture entry timestamp
		requestID := generateRequestID() // Correlation id for this request
		c.Set(RequestIDKey, requestID)   // Carried in the context, not returned to the caller

		c.Next() // Dispatch to the controller

		duration := time.Since(start) // Compute duration
		status := c.Writer.Status()   // Status written by the handler chain
		entry := logrus.WithFields(logrus.Fields{
			"method":      c.Request.Method,   // HTTP method
			"path":        c.Request.URL.Path, // Request path
			"status":      status,             // Response status code
			"duration_ms": duration.Milliseconds(),
			"request_id":  requestID,
		})
		// Severity banded by status class
		switch {
		case status >= 500:
			entry.Error("HTTP request completed")
		case status >= 400:
			entry.Warn("HTTP request completed")
		default:
			entry.Info("HTTP request completed")
		}
		// Errors attached by handlers surface on their own line
		if len(c.Errors) > 0 {
			logrus.WithFields(logrus.Fields{
				"request_id": requestID,
				"errors":     c.Errors.String(),
			}).Error("Request failed with errors")
		}
	}
}
