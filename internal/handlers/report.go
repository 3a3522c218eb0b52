package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/services"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type ReportHandler struct {
  log       *logger.Logger
  reportSvc services.ReportService
}

func NewReportHandler(log *logger.Logger, reportSvc services.ReportService) *ReportHandler {
  return &ReportHandler{
    log:       log.With("handler", "ReportHandler"),
    reportSvc: reportSvc,
  }
}

type reportCreateRequest struct {
  ReportDate  string    `json:"report_date" binding:"required"`
  ReportType  *string   `json:"report_type"`
  Content     *string   `json:"content"`
}

// POST /reports/:user_id
func (h *ReportHandler) Create(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  var req reportCreateRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  created, err := h.reportSvc.Create(c.Request.Context(), &types.Report{
    UserID:     userID,
    ReportDate: req.ReportDate,
    ReportType: req.ReportType,
    Content:    req.Content,
  })
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, created)
}

// GET /reports/:user_id
func (h *ReportHandler) GetForUser(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  reportType := c.Query("report_type")
  limit := intQuery(c, "limit", 0)
  reports, err := h.reportSvc.GetForUser(c.Request.Context(), userID, reportType, limit)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, reports)
}
