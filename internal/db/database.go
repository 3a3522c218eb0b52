package db

import (
  "fmt"
  "os"
  "path/filepath"
  "gorm.io/driver/postgres"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"
  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/types"
  "github.com/caretrack/caretrack-backend/internal/utils"
)

type DatabaseService struct {
  db  *gorm.DB
  log *logger.Logger
}

// NewDatabaseService opens the relational store. SQLite is the default;
// DB_DRIVER=postgres switches to Postgres for shared deployments.
func NewDatabaseService(log *logger.Logger) (*DatabaseService, error) {
  serviceLog := log.With("service", "DatabaseService")

  driver := utils.GetEnv("DB_DRIVER", "sqlite", log)

  var dialector gorm.Dialector
  switch driver {
  case "postgres":
    pgHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
    pgPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
    pgUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
    pgPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
    pgName := utils.GetEnv("POSTGRES_NAME", "caretrack", log)
    dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, pgHost, pgPort, pgName)
    dialector = postgres.Open(dsn)
  case "sqlite":
    path := utils.GetEnv("SQLITE_PATH", "data/db.sqlite3", log)
    if dir := filepath.Dir(path); dir != "." {
      if err := os.MkdirAll(dir, 0o755); err != nil {
        return nil, fmt.Errorf("creating sqlite directory: %w", err)
      }
    }
    dialector = sqlite.Open(path + "?_foreign_keys=on")
  default:
    return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
  }

  log.Info("Connecting to database...", "driver", driver)
  db, err := gorm.Open(dialector, &gorm.Config{})
  if err != nil {
    serviceLog.Error("Failed to connect to database", "driver", driver, "error", err)
    return nil, fmt.Errorf("failed to connect to database: %w", err)
  }

  if driver == "sqlite" {
    if err := db.Exec("PRAGMA foreign_keys = ON;").Error; err != nil {
      serviceLog.Error("Failed to enable foreign keys", "error", err)
      return nil, fmt.Errorf("failed to enable sqlite foreign keys: %w", err)
    }
  }

  return &DatabaseService{db: db, log: serviceLog}, nil
}

func (s *DatabaseService) DB() *gorm.DB {
  return s.db
}

func (s *DatabaseService) AutoMigrateAll() error {
  s.log.Info("Auto migrating tables...")
  err := s.db.AutoMigrate(
    &types.User{},
    &types.UserToken{},
    &types.Symptom{},
    &types.Disorder{},
    &types.UserDisorder{},
    &types.Medication{},
    &types.UserMedication{},
    &types.MedicationSchedule{},
    &types.DailyMetric{},
    &types.Report{},
    &types.Notification{},
    &types.Alert{},
  )
  if err != nil {
    s.log.Error("Auto migration failed", "error", err)
    return err
  }
  s.log.Info("Auto migration complete")
  return nil
}
