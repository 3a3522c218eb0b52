package repos

import (
  "context"
  "testing"

  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
  t.Helper()
  db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{})
  if err != nil {
    t.Fatalf("failed to open test db: %v", err)
  }
  // One connection keeps the in-memory database (and its pragmas) alive for
  // the whole test.
  sqlDB, err := db.DB()
  if err != nil {
    t.Fatalf("failed to access sql db: %v", err)
  }
  sqlDB.SetMaxIdleConns(1)
  sqlDB.SetMaxOpenConns(1)
  err = db.AutoMigrate(
    &types.User{},
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
    &types.UserToken{},
  )
  if err != nil {
    t.Fatalf("failed to migrate test db: %v", err)
  }
  return db
}

func newTestLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("failed to init logger: %v", err)
  }
  return log
}

func seedUser(t *testing.T, db *gorm.DB, name string) *types.User {
  t.Helper()
  log := newTestLogger(t)
  repo := NewUserRepo(db, log)
  user, err := repo.Create(context.Background(), nil, &types.User{Name: name})
  if err != nil {
    t.Fatalf("failed to seed user: %v", err)
  }
  return user
}
