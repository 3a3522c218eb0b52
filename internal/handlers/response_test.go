package handlers

import (
  "encoding/json"
  "errors"
  "net/http"
  "net/http/httptest"
  "testing"

  "github.com/gin-gonic/gin"
  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "github.com/caretrack/caretrack-backend/internal/apierr"
)

func init() {
  gin.SetMode(gin.TestMode)
}

func TestHealthCheck(t *testing.T) {
  router := gin.New()
  router.GET("/health", HealthCheck)

  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

  require.Equal(t, http.StatusOK, rec.Code)
  var body map[string]string
  require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
  assert.Equal(t, "healthy", body["status"])
}

func TestRespondErrorStatusMapping(t *testing.T) {
  tests := []struct {
    name  string
    err   error
    want  int
  }{
    {"not found", apierr.NotFound("user_not_found", errors.New("missing")), http.StatusNotFound},
    {"validation", apierr.Validation("bad_input", errors.New("bad")), http.StatusBadRequest},
    {"upstream", apierr.Upstream("provider_down", errors.New("timeout")), http.StatusBadGateway},
    {"internal", apierr.Internal("boom", errors.New("boom")), http.StatusInternalServerError},
    {"plain", errors.New("anything"), http.StatusInternalServerError},
  }

  for _, tt := range tests {
    t.Run(tt.name, func(t *testing.T) {
      rec := httptest.NewRecorder()
      c, _ := gin.CreateTestContext(rec)
      respondError(c, tt.err)
      assert.Equal(t, tt.want, rec.Code)
    })
  }
}

func TestIDParamRejectsMalformedValues(t *testing.T) {
  router := gin.New()
  router.GET("/users/:user_id", func(c *gin.Context) {
    id, ok := idParam(c, "user_id")
    if !ok {
      return
    }
    c.JSON(http.StatusOK, gin.H{"user_id": id})
  })

  tests := []struct {
    path  string
    want  int
  }{
    {"/users/7", http.StatusOK},
    {"/users/abc", http.StatusBadRequest},
    {"/users/0", http.StatusBadRequest},
    {"/users/-3", http.StatusBadRequest},
  }
  for _, tt := range tests {
    rec := httptest.NewRecorder()
    router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
    if rec.Code != tt.want {
      t.Fatalf("GET %s = %d, want %d", tt.path, rec.Code, tt.want)
    }
  }
}

func TestQueryHelpers(t *testing.T) {
  router := gin.New()
  router.GET("/q", func(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{
      "limit":       intQuery(c, "limit", 30),
      "unread_only": boolQuery(c, "unread_only"),
    })
  })

  rec := httptest.NewRecorder()
  router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/q?limit=5&unread_only=true", nil))
  var body struct {
    Limit      int  `json:"limit"`
    UnreadOnly bool `json:"unread_only"`
  }
  require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
  assert.Equal(t, 5, body.Limit)
  assert.True(t, body.UnreadOnly)

  rec = httptest.NewRecorder()
  router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/q?limit=junk", nil))
  require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
  assert.Equal(t, 30, body.Limit)
  assert.False(t, body.UnreadOnly)
}
