package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/services"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type MedicationHandler struct {
  log           *logger.Logger
  medicationSvc services.MedicationService
}

func NewMedicationHandler(log *logger.Logger, medicationSvc services.MedicationService) *MedicationHandler {
  return &MedicationHandler{
    log:           log.With("handler", "MedicationHandler"),
    medicationSvc: medicationSvc,
  }
}

// POST /medications
func (h *MedicationHandler) Create(c *gin.Context) {
  var medication types.Medication
  if err := c.ShouldBindJSON(&medication); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  if medication.Name == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
    return
  }
  created, err := h.medicationSvc.CreateMedication(c.Request.Context(), &medication)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, created)
}

// GET /medications
func (h *MedicationHandler) GetAll(c *gin.Context) {
  medications, err := h.medicationSvc.GetAllMedications(c.Request.Context())
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, medications)
}

type medicationAssignRequest struct {
  MedicationID  int64     `json:"medication_id" binding:"required"`
  StartDate     string    `json:"start_date" binding:"required"`
  EndDate       *string   `json:"end_date"`
  Frequency     *string   `json:"frequency"`
}

// POST /medications/:user_id/assign
func (h *MedicationHandler) AssignToUser(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  var req medicationAssignRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  created, err := h.medicationSvc.AssignToUser(c.Request.Context(), &types.UserMedication{
    UserID:       userID,
    MedicationID: req.MedicationID,
    StartDate:    req.StartDate,
    EndDate:      req.EndDate,
    Frequency:    req.Frequency,
  })
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, created)
}

// GET /medications/:user_id
func (h *MedicationHandler) GetForUser(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  medications, err := h.medicationSvc.GetUserMedications(c.Request.Context(), userID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, medications)
}

type scheduleCreateRequest struct {
  UserMedID  int64    `json:"user_med_id" binding:"required"`
  Date       string   `json:"date" binding:"required"`
  Time       string   `json:"time" binding:"required"`
  Status     string   `json:"status"`
}

// POST /medications/schedule
func (h *MedicationHandler) AddScheduleEntry(c *gin.Context) {
  var req scheduleCreateRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  entry := &types.MedicationSchedule{
    UserMedID: req.UserMedID,
    Date:      req.Date,
    Time:      req.Time,
    Status:    req.Status,
  }
  if entry.Status == "" {
    entry.Status = "pending"
  }
  created, err := h.medicationSvc.AddScheduleEntry(c.Request.Context(), entry)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, created)
}

// GET /medications/:user_id/schedule
func (h *MedicationHandler) GetSchedule(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  date := c.Query("date")
  schedule, err := h.medicationSvc.GetSchedule(c.Request.Context(), userID, date)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, schedule)
}
