package main

import (
  "fmt"
  "os"

  "github.com/caretrack/caretrack-backend/internal/clients/redis"
  "github.com/caretrack/caretrack-backend/internal/db"
  "github.com/caretrack/caretrack-backend/internal/handlers"
  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/repos"
  "github.com/caretrack/caretrack-backend/internal/server"
  "github.com/caretrack/caretrack-backend/internal/services"
  "github.com/caretrack/caretrack-backend/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Database
  databaseService, err := db.NewDatabaseService(log)
  if err != nil {
    log.Error("Database init failed", "error", err)
    os.Exit(1)
  }
  if err = databaseService.AutoMigrateAll(); err != nil {
    log.Error("Auto migration failed", "error", err)
    os.Exit(1)
  }
  theDB := databaseService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(theDB, log)
  symptomRepo := repos.NewSymptomRepo(theDB, log)
  disorderRepo := repos.NewDisorderRepo(theDB, log)
  medicationRepo := repos.NewMedicationRepo(theDB, log)
  metricRepo := repos.NewDailyMetricRepo(theDB, log)
  reportRepo := repos.NewReportRepo(theDB, log)
  notificationRepo := repos.NewNotificationRepo(theDB, log)
  alertRepo := repos.NewAlertRepo(theDB, log)
  tokenRepo := repos.NewUserTokenRepo(theDB, log)

  // Chat store
  log.Info("Setting up chat store from main...")
  chatStore, err := redis.NewChatStore(log)
  if err != nil {
    log.Error("Could not init chat store", "error", err)
    os.Exit(1)
  }
  defer chatStore.Close()

  // Services
  log.Info("Setting up Services from main...")
  generationClient, err := services.NewGenerationClient(log)
  if err != nil {
    log.Error("Could not init GenerationClient", "error", err)
    os.Exit(1)
  }
  notificationRules, err := services.LoadNotificationRules(os.Getenv("NOTIFICATION_RULES_PATH"))
  if err != nil {
    log.Error("Could not load notification rules", "error", err)
    os.Exit(1)
  }

  contextService := services.NewContextService(log, userRepo, symptomRepo, disorderRepo, medicationRepo, reportRepo)
  userService := services.NewUserService(theDB, log, userRepo)
  symptomService := services.NewSymptomService(theDB, log, symptomRepo)
  disorderService := services.NewDisorderService(theDB, log, disorderRepo)
  medicationService := services.NewMedicationService(theDB, log, medicationRepo)
  metricService := services.NewMetricService(theDB, log, metricRepo, medicationRepo, disorderRepo, reportRepo)
  reportService := services.NewReportService(theDB, log, reportRepo)
  notificationService := services.NewNotificationService(theDB, log, notificationRepo)
  alertService := services.NewAlertService(theDB, log, alertRepo)
  tokenService := services.NewTokenService(theDB, log, tokenRepo)
  chatService := services.NewChatService(log, chatStore, contextService, generationClient, symptomRepo)
  summarizerService := services.NewSummarizerService(log, chatStore, generationClient)
  notificationGenService := services.NewNotificationGenService(
    log,
    theDB,
    contextService,
    generationClient,
    notificationRules,
    symptomRepo,
    medicationRepo,
    userRepo,
    notificationRepo,
  )

  // Handlers
  log.Info("Setting up handlers from main...")
  userHandler := handlers.NewUserHandler(log, userService, contextService)
  symptomHandler := handlers.NewSymptomHandler(log, symptomService)
  disorderHandler := handlers.NewDisorderHandler(log, disorderService)
  medicationHandler := handlers.NewMedicationHandler(log, medicationService)
  metricHandler := handlers.NewMetricHandler(log, metricService)
  reportHandler := handlers.NewReportHandler(log, reportService)
  notificationHandler := handlers.NewNotificationHandler(log, notificationService, notificationGenService)
  alertHandler := handlers.NewAlertHandler(log, alertService)
  chatHandler := handlers.NewChatHandler(log, chatService, summarizerService)
  tokenHandler := handlers.NewTokenHandler(log, tokenService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    Log:                 log,
    UserHandler:         userHandler,
    SymptomHandler:      symptomHandler,
    DisorderHandler:     disorderHandler,
    MedicationHandler:   medicationHandler,
    MetricHandler:       metricHandler,
    ReportHandler:       reportHandler,
    NotificationHandler: notificationHandler,
    AlertHandler:        alertHandler,
    ChatHandler:         chatHandler,
    TokenHandler:        tokenHandler,
  })

  port := utils.GetEnv("PORT", "8000", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Warn("Server failed", "error", err)
  }
}
