package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/services"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type MetricHandler struct {
  log       *logger.Logger
  metricSvc services.MetricService
}

func NewMetricHandler(log *logger.Logger, metricSvc services.MetricService) *MetricHandler {
  return &MetricHandler{
    log:       log.With("handler", "MetricHandler"),
    metricSvc: metricSvc,
  }
}

type metricCreateRequest struct {
  Date           string     `json:"date" binding:"required"`
  Steps          *int       `json:"steps"`
  HeartRate      *int       `json:"heart_rate"`
  SleepHours     *float64   `json:"sleep_hours"`
  BloodPressure  *string    `json:"blood_pressure"`
  Mood           *string    `json:"mood"`
  Notes          *string    `json:"notes"`
}

// POST /metrics/:user_id
func (h *MetricHandler) Create(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  var req metricCreateRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  created, err := h.metricSvc.Record(c.Request.Context(), &types.DailyMetric{
    UserID:        userID,
    Date:          req.Date,
    Steps:         req.Steps,
    HeartRate:     req.HeartRate,
    SleepHours:    req.SleepHours,
    BloodPressure: req.BloodPressure,
    Mood:          req.Mood,
    Notes:         req.Notes,
  })
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, created)
}

// GET /metrics/:user_id
func (h *MetricHandler) GetForUser(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  date := c.Query("date")
  limit := intQuery(c, "limit", 0)
  metrics, err := h.metricSvc.GetForUser(c.Request.Context(), userID, date, limit)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, metrics)
}

// GET /reports/:user_id/summary
func (h *MetricHandler) GetUserDataByDate(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  date := c.Query("date")
  if date == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
    return
  }
  data, err := h.metricSvc.GetUserDataByDate(c.Request.Context(), userID, date)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, data)
}
