package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/services"
)

type ChatHandler struct {
  log           *logger.Logger
  chatSvc       services.ChatService
  summarizerSvc services.SummarizerService
}

func NewChatHandler(log *logger.Logger, chatSvc services.ChatService, summarizerSvc services.SummarizerService) *ChatHandler {
  return &ChatHandler{
    log:           log.With("handler", "ChatHandler"),
    chatSvc:       chatSvc,
    summarizerSvc: summarizerSvc,
  }
}

type chatRequest struct {
  UserID   int64    `json:"user_id" binding:"required"`
  Message  string   `json:"message" binding:"required"`
}

// POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
  var req chatRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and message are required"})
    return
  }
  result, err := h.chatSvc.HandleConversation(c.Request.Context(), req.UserID, req.Message)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"response": result.Response, "symptoms": result.Symptoms})
}

type summarizeRequest struct {
  UserID  int64   `json:"user_id" binding:"required"`
}

// POST /summarize
func (h *ChatHandler) Summarize(c *gin.Context) {
  var req summarizeRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
    return
  }
  summary, err := h.summarizerSvc.SummarizeDay(c.Request.Context(), req.UserID)
  if err != nil {
    respondError(c, err)
    return
  }
  if summary == services.NoConversationMessage {
    c.JSON(http.StatusOK, gin.H{
      "message": "Summarization process ran, but no summary was generated (e.g., no conversation).",
    })
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "message": "Summarization successful. The raw chat log has been replaced with this summary.",
    "summary": summary,
  })
}
