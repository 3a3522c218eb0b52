package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/services"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type DisorderHandler struct {
  log         *logger.Logger
  disorderSvc services.DisorderService
}

func NewDisorderHandler(log *logger.Logger, disorderSvc services.DisorderService) *DisorderHandler {
  return &DisorderHandler{
    log:         log.With("handler", "DisorderHandler"),
    disorderSvc: disorderSvc,
  }
}

// POST /disorders
func (h *DisorderHandler) Create(c *gin.Context) {
  var disorder types.Disorder
  if err := c.ShouldBindJSON(&disorder); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  if disorder.Name == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
    return
  }
  created, err := h.disorderSvc.CreateDisorder(c.Request.Context(), &disorder)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, created)
}

// GET /disorders
func (h *DisorderHandler) GetAll(c *gin.Context) {
  disorders, err := h.disorderSvc.GetAllDisorders(c.Request.Context())
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, disorders)
}

type disorderAssignRequest struct {
  DisorderID     int64     `json:"disorder_id" binding:"required"`
  DiagnosedDate  string    `json:"diagnosed_date" binding:"required"`
  ResolvedDate   *string   `json:"resolved_date"`
}

// POST /disorders/:user_id/assign
func (h *DisorderHandler) AssignToUser(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  var req disorderAssignRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  created, err := h.disorderSvc.AssignToUser(c.Request.Context(), &types.UserDisorder{
    UserID:        userID,
    DisorderID:    req.DisorderID,
    DiagnosedDate: req.DiagnosedDate,
    ResolvedDate:  req.ResolvedDate,
  })
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, created)
}

// GET /disorders/:user_id
func (h *DisorderHandler) GetForUser(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  disorders, err := h.disorderSvc.GetUserDisorders(c.Request.Context(), userID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, disorders)
}
