package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/services"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type NotificationHandler struct {
  log             *logger.Logger
  notificationSvc services.NotificationService
  genSvc          services.NotificationGenService
}

func NewNotificationHandler(
  log *logger.Logger,
  notificationSvc services.NotificationService,
  genSvc services.NotificationGenService,
) *NotificationHandler {
  return &NotificationHandler{
    log:             log.With("handler", "NotificationHandler"),
    notificationSvc: notificationSvc,
    genSvc:          genSvc,
  }
}

type notificationCreateRequest struct {
  Title    string    `json:"title" binding:"required"`
  Message  string    `json:"message" binding:"required"`
  Type     *string   `json:"notification_type"`
}

// POST /notifications/:user_id
func (h *NotificationHandler) Create(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  var req notificationCreateRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  created, err := h.notificationSvc.Create(c.Request.Context(), &types.Notification{
    UserID:  userID,
    Title:   req.Title,
    Message: req.Message,
    Type:    req.Type,
  })
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, created)
}

// GET /notifications/:user_id
func (h *NotificationHandler) GetForUser(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  unreadOnly := boolQuery(c, "unread_only")
  limit := intQuery(c, "limit", 0)
  notifications, err := h.notificationSvc.GetForUser(c.Request.Context(), userID, unreadOnly, limit)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, notifications)
}

// PUT /notifications/:user_id/mark-read/:notification_id
func (h *NotificationHandler) MarkRead(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  notificationID, ok := idParam(c, "notification_id")
  if !ok {
    return
  }
  if err := h.notificationSvc.MarkRead(c.Request.Context(), notificationID, userID); err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// PUT /notifications/:user_id/mark-all-read
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  updated, err := h.notificationSvc.MarkAllRead(c.Request.Context(), userID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"updated_count": updated})
}

// GET /notifications/:user_id/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  count, err := h.notificationSvc.UnreadCount(c.Request.Context(), userID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

// DELETE /notifications/:user_id/:notification_id
func (h *NotificationHandler) Delete(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  notificationID, ok := idParam(c, "notification_id")
  if !ok {
    return
  }
  if err := h.notificationSvc.Delete(c.Request.Context(), notificationID, userID); err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "Notification deleted"})
}

type personalizedRequest struct {
  NotificationType  string   `json:"notification_type"`
  CustomContext     string   `json:"custom_context"`
}

// POST /notifications/:user_id/personalized
func (h *NotificationHandler) CreatePersonalized(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  var req personalizedRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  created, err := h.genSvc.GenerateAndSave(c.Request.Context(), userID, req.NotificationType, req.CustomContext)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, created)
}

// POST /notifications/:user_id/daily-personalized
func (h *NotificationHandler) CreateDailyPersonalized(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  created, err := h.genSvc.GenerateDailyAndSave(c.Request.Context(), userID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, created)
}

type multiplePersonalizedRequest struct {
  NotificationTypes  []string   `json:"notification_types"`
}

// POST /notifications/:user_id/multiple-personalized
func (h *NotificationHandler) CreateMultiplePersonalized(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  var req multiplePersonalizedRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  created, err := h.genSvc.GenerateMultipleAndSave(c.Request.Context(), userID, req.NotificationTypes)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, created)
}

// GET /notifications/:user_id/generate-preview
func (h *NotificationHandler) GeneratePreview(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  notificationType := c.DefaultQuery("notification_type", "general")
  customContext := c.Query("custom_context")

  preview := h.genSvc.Generate(c.Request.Context(), userID, notificationType, customContext)
  c.JSON(http.StatusOK, gin.H{
    "user_id": userID,
    "preview": preview,
    "note":    "This is a preview. Use POST /notifications/:user_id/personalized to save it.",
  })
}
