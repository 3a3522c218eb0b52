package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/services"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type SymptomHandler struct {
  log        *logger.Logger
  symptomSvc services.SymptomService
}

func NewSymptomHandler(log *logger.Logger, symptomSvc services.SymptomService) *SymptomHandler {
  return &SymptomHandler{
    log:        log.With("handler", "SymptomHandler"),
    symptomSvc: symptomSvc,
  }
}

type symptomCreateRequest struct {
  Symptom   string    `json:"symptom" binding:"required"`
  Severity  *string   `json:"severity"`
  Duration  *string   `json:"duration"`
  Notes     *string   `json:"notes"`
}

// POST /symptoms/:user_id
func (h *SymptomHandler) Create(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  var req symptomCreateRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  created, err := h.symptomSvc.Log(c.Request.Context(), &types.Symptom{
    UserID:   userID,
    Symptom:  req.Symptom,
    Severity: req.Severity,
    Duration: req.Duration,
    Notes:    req.Notes,
  })
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, created)
}

// GET /symptoms/:user_id
func (h *SymptomHandler) GetForUser(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  limit := intQuery(c, "limit", 0)
  symptoms, err := h.symptomSvc.GetForUser(c.Request.Context(), userID, limit)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, symptoms)
}

// GET /symptoms/:user_id/recent
func (h *SymptomHandler) GetRecent(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  days := intQuery(c, "days", 30)
  limit := intQuery(c, "limit", 0)
  symptoms, err := h.symptomSvc.GetRecent(c.Request.Context(), userID, days, limit)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, symptoms)
}
