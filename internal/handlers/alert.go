package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/repos"
  "github.com/caretrack/caretrack-backend/internal/services"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type AlertHandler struct {
  log      *logger.Logger
  alertSvc services.AlertService
}

func NewAlertHandler(log *logger.Logger, alertSvc services.AlertService) *AlertHandler {
  return &AlertHandler{
    log:      log.With("handler", "AlertHandler"),
    alertSvc: alertSvc,
  }
}

type alertCreateRequest struct {
  Type      string   `json:"alert_type" binding:"required"`
  Title     string   `json:"title" binding:"required"`
  Message   string   `json:"message" binding:"required"`
  AlertTime string   `json:"alert_time" binding:"required"`
}

// POST /alerts/:user_id
func (h *AlertHandler) Create(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  var req alertCreateRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  created, err := h.alertSvc.Create(c.Request.Context(), &types.Alert{
    UserID:    userID,
    Type:      req.Type,
    Title:     req.Title,
    Message:   req.Message,
    AlertTime: req.AlertTime,
    IsActive:  true,
  })
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, created)
}

// GET /alerts/:user_id
func (h *AlertHandler) GetForUser(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  activeOnly := boolQuery(c, "active_only")
  limit := intQuery(c, "limit", 0)
  alerts, err := h.alertSvc.GetForUser(c.Request.Context(), userID, activeOnly, limit)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, alerts)
}

// GET /alerts/:user_id/upcoming
func (h *AlertHandler) GetUpcoming(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  hoursAhead := intQuery(c, "hours_ahead", 24)
  alerts, err := h.alertSvc.GetUpcoming(c.Request.Context(), userID, hoursAhead)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, alerts)
}

// PUT /alerts/:user_id/:alert_id
func (h *AlertHandler) Update(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  alertID, ok := idParam(c, "alert_id")
  if !ok {
    return
  }
  var patch repos.AlertPatch
  if err := c.ShouldBindJSON(&patch); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  updated, err := h.alertSvc.Update(c.Request.Context(), alertID, userID, &patch)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, updated)
}

// PUT /alerts/:user_id/:alert_id/deactivate
func (h *AlertHandler) Deactivate(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  alertID, ok := idParam(c, "alert_id")
  if !ok {
    return
  }
  if err := h.alertSvc.Deactivate(c.Request.Context(), alertID, userID); err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "Alert deactivated"})
}

// DELETE /alerts/:user_id/:alert_id
func (h *AlertHandler) Delete(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  alertID, ok := idParam(c, "alert_id")
  if !ok {
    return
  }
  if err := h.alertSvc.Delete(c.Request.Context(), alertID, userID); err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "Alert deleted"})
}

// GET /alerts/:user_id/active-count
func (h *AlertHandler) ActiveCount(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  count, err := h.alertSvc.ActiveCount(c.Request.Context(), userID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"active_count": count})
}
