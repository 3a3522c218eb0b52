package middleware

import (
  "time"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/caretrack/caretrack-backend/internal/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestID assigns a request id (or keeps the caller's) and logs every
// request with its latency and status.
func RequestID(log *logger.Logger) gin.HandlerFunc {
  requestLog := log.With("middleware", "RequestID")
  return func(c *gin.Context) {
    requestID := c.GetHeader(RequestIDHeader)
    if requestID == "" {
      requestID = uuid.NewString()
    }
    c.Set("request_id", requestID)
    c.Header(RequestIDHeader, requestID)

    start := time.Now()
    c.Next()

    requestLog.Info("Request completed",
      "request_id", requestID,
      "method", c.Request.Method,
      "path", c.FullPath(),
      "status", c.Writer.Status(),
      "latency_ms", time.Since(start).Milliseconds(),
    )
  }
}
