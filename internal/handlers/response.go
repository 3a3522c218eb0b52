package handlers

import (
  "net/http"
  "strconv"

  "github.com/gin-gonic/gin"

  "github.com/caretrack/caretrack-backend/internal/apierr"
)

func respondError(c *gin.Context, err error) {
  c.JSON(apierr.Status(err), gin.H{"error": err.Error()})
}

// idParam parses a positive integer path parameter; writes a 400 and returns
// false when it is missing or malformed.
func idParam(c *gin.Context, name string) (int64, bool) {
  raw := c.Param(name)
  id, err := strconv.ParseInt(raw, 10, 64)
  if err != nil || id <= 0 {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
    return 0, false
  }
  return id, true
}

func intQuery(c *gin.Context, name string, fallback int) int {
  raw := c.Query(name)
  if raw == "" {
    return fallback
  }
  v, err := strconv.Atoi(raw)
  if err != nil {
    return fallback
  }
  return v
}

func boolQuery(c *gin.Context, name string) bool {
  raw := c.Query(name)
  return raw == "true" || raw == "1"
}
