package server

import (
  "strings"

  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"

  "github.com/caretrack/caretrack-backend/internal/handlers"
  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/middleware"
  "github.com/caretrack/caretrack-backend/internal/utils"
)

type RouterConfig struct {
  Log                 *logger.Logger
  UserHandler         *handlers.UserHandler
  SymptomHandler      *handlers.SymptomHandler
  DisorderHandler     *handlers.DisorderHandler
  MedicationHandler   *handlers.MedicationHandler
  MetricHandler       *handlers.MetricHandler
  ReportHandler       *handlers.ReportHandler
  NotificationHandler *handlers.NotificationHandler
  AlertHandler        *handlers.AlertHandler
  ChatHandler         *handlers.ChatHandler
  TokenHandler        *handlers.TokenHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()
  router.Use(middleware.RequestID(cfg.Log))

  // Cors
  allowedOrigins := strings.Split(utils.GetEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000", cfg.Log), ",")
  router.Use(cors.New(cors.Config{
    AllowOrigins:     allowedOrigins,
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", middleware.RequestIDHeader},
    AllowCredentials: true,
  }))

  router.GET("/health", handlers.HealthCheck)

  // Users
  router.POST("/users", cfg.UserHandler.Create)
  router.GET("/users", cfg.UserHandler.GetAll)
  router.GET("/users/:user_id", cfg.UserHandler.GetByID)
  router.GET("/users/:user_id/profile", cfg.UserHandler.GetProfile)
  router.PUT("/users/:user_id/profile", cfg.UserHandler.UpdateProfile)
  router.GET("/users/:user_id/comprehensive", cfg.UserHandler.GetComprehensive)

  // Symptoms
  router.POST("/symptoms/:user_id", cfg.SymptomHandler.Create)
  router.GET("/symptoms/:user_id", cfg.SymptomHandler.GetForUser)
  router.GET("/symptoms/:user_id/recent", cfg.SymptomHandler.GetRecent)

  // Disorders
  router.POST("/disorders", cfg.DisorderHandler.Create)
  router.GET("/disorders", cfg.DisorderHandler.GetAll)
  router.POST("/disorders/:user_id/assign", cfg.DisorderHandler.AssignToUser)
  router.GET("/disorders/:user_id", cfg.DisorderHandler.GetForUser)

  // Medications
  router.POST("/medications", cfg.MedicationHandler.Create)
  router.GET("/medications", cfg.MedicationHandler.GetAll)
  router.POST("/medications/schedule", cfg.MedicationHandler.AddScheduleEntry)
  router.POST("/medications/:user_id/assign", cfg.MedicationHandler.AssignToUser)
  router.GET("/medications/:user_id", cfg.MedicationHandler.GetForUser)
  router.GET("/medications/:user_id/schedule", cfg.MedicationHandler.GetSchedule)

  // Daily metrics
  router.POST("/metrics/:user_id", cfg.MetricHandler.Create)
  router.GET("/metrics/:user_id", cfg.MetricHandler.GetForUser)

  // Reports
  router.POST("/reports/:user_id", cfg.ReportHandler.Create)
  router.GET("/reports/:user_id", cfg.ReportHandler.GetForUser)
  router.GET("/reports/:user_id/summary", cfg.MetricHandler.GetUserDataByDate)

  // Notifications
  router.POST("/notifications/:user_id", cfg.NotificationHandler.Create)
  router.GET("/notifications/:user_id", cfg.NotificationHandler.GetForUser)
  router.PUT("/notifications/:user_id/mark-read/:notification_id", cfg.NotificationHandler.MarkRead)
  router.PUT("/notifications/:user_id/mark-all-read", cfg.NotificationHandler.MarkAllRead)
  router.GET("/notifications/:user_id/unread-count", cfg.NotificationHandler.UnreadCount)
  router.DELETE("/notifications/:user_id/:notification_id", cfg.NotificationHandler.Delete)
  router.POST("/notifications/:user_id/personalized", cfg.NotificationHandler.CreatePersonalized)
  router.POST("/notifications/:user_id/daily-personalized", cfg.NotificationHandler.CreateDailyPersonalized)
  router.POST("/notifications/:user_id/multiple-personalized", cfg.NotificationHandler.CreateMultiplePersonalized)
  router.GET("/notifications/:user_id/generate-preview", cfg.NotificationHandler.GeneratePreview)

  // Alerts
  router.POST("/alerts/:user_id", cfg.AlertHandler.Create)
  router.GET("/alerts/:user_id", cfg.AlertHandler.GetForUser)
  router.GET("/alerts/:user_id/upcoming", cfg.AlertHandler.GetUpcoming)
  router.GET("/alerts/:user_id/active-count", cfg.AlertHandler.ActiveCount)
  router.PUT("/alerts/:user_id/:alert_id", cfg.AlertHandler.Update)
  router.PUT("/alerts/:user_id/:alert_id/deactivate", cfg.AlertHandler.Deactivate)
  router.DELETE("/alerts/:user_id/:alert_id", cfg.AlertHandler.Delete)

  // Companion chat
  router.POST("/chat", cfg.ChatHandler.Chat)
  router.POST("/summarize", cfg.ChatHandler.Summarize)

  // OAuth tokens
  router.POST("/tokens/:user_id", cfg.TokenHandler.Save)
  router.GET("/tokens/:user_id", cfg.TokenHandler.GetForUser)
  router.POST("/tokens/:user_id/revoke", cfg.TokenHandler.Revoke)

  return router
}
