package handlers

import (
  "encoding/json"
  "net/http"

  "github.com/gin-gonic/gin"
  "gorm.io/datatypes"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/services"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type TokenHandler struct {
  log      *logger.Logger
  tokenSvc services.TokenService
}

func NewTokenHandler(log *logger.Logger, tokenSvc services.TokenService) *TokenHandler {
  return &TokenHandler{
    log:      log.With("handler", "TokenHandler"),
    tokenSvc: tokenSvc,
  }
}

type tokenSaveRequest struct {
  AccessToken   string     `json:"access_token" binding:"required"`
  RefreshToken  *string    `json:"refresh_token"`
  ExpiresAt     *string    `json:"expires_at"`
  Scopes        []string   `json:"scopes"`
}

// POST /tokens/:user_id
func (h *TokenHandler) Save(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  var req tokenSaveRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }

  var scopes datatypes.JSON
  if len(req.Scopes) > 0 {
    raw, err := json.Marshal(req.Scopes)
    if err != nil {
      c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scopes"})
      return
    }
    scopes = datatypes.JSON(raw)
  }

  created, err := h.tokenSvc.Save(c.Request.Context(), &types.UserToken{
    UserID:       userID,
    AccessToken:  req.AccessToken,
    RefreshToken: req.RefreshToken,
    ExpiresAt:    req.ExpiresAt,
    Scopes:       scopes,
  })
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, created)
}

// GET /tokens/:user_id
func (h *TokenHandler) GetForUser(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  tokens, err := h.tokenSvc.GetForUser(c.Request.Context(), userID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, tokens)
}

// POST /tokens/:user_id/revoke
func (h *TokenHandler) Revoke(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  if err := h.tokenSvc.Revoke(c.Request.Context(), userID); err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "Access revoked."})
}
