package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/repos"
  "github.com/caretrack/caretrack-backend/internal/services"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type UserHandler struct {
  log        *logger.Logger
  userSvc    services.UserService
  contextSvc services.ContextService
}

func NewUserHandler(log *logger.Logger, userSvc services.UserService, contextSvc services.ContextService) *UserHandler {
  return &UserHandler{
    log:        log.With("handler", "UserHandler"),
    userSvc:    userSvc,
    contextSvc: contextSvc,
  }
}

// POST /users
func (h *UserHandler) Create(c *gin.Context) {
  var user types.User
  if err := c.ShouldBindJSON(&user); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  if user.Name == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
    return
  }
  created, err := h.userSvc.Create(c.Request.Context(), &user)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, created)
}

// GET /users
func (h *UserHandler) GetAll(c *gin.Context) {
  users, err := h.userSvc.GetAll(c.Request.Context())
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, users)
}

// GET /users/:user_id
func (h *UserHandler) GetByID(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  user, err := h.userSvc.GetByID(c.Request.Context(), userID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, user)
}

// GET /users/:user_id/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  user, err := h.userSvc.GetByID(c.Request.Context(), userID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, user)
}

// PUT /users/:user_id/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  var patch repos.UserProfilePatch
  if err := c.ShouldBindJSON(&patch); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  updated, err := h.userSvc.UpdateProfile(c.Request.Context(), userID, &patch)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, updated)
}

// GET /users/:user_id/comprehensive
func (h *UserHandler) GetComprehensive(c *gin.Context) {
  userID, ok := idParam(c, "user_id")
  if !ok {
    return
  }
  block, err := h.contextSvc.BuildContextBlock(c.Request.Context(), userID)
  if err != nil {
    respondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"user_id": userID, "comprehensive_data": block})
}
