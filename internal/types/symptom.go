package types

import (
  "time"
)

// Symptom rows are an append-only log; LogDate is set by the database on
// insert and never mutated.
type Symptom struct {
  ID        int64       `gorm:"column:symptom_id;primaryKey;autoIncrement" json:"symptom_id"`
  UserID    int64       `gorm:"index;not null;column:user_id" json:"user_id"`
  Symptom   string      `gorm:"not null;column:symptom" json:"symptom"`
  Severity  *string     `gorm:"column:severity" json:"severity,omitempty"`
  Duration  *string     `gorm:"column:duration" json:"duration,omitempty"`
  Notes     *string     `gorm:"column:notes" json:"notes,omitempty"`
  LogDate   time.Time   `gorm:"not null;autoCreateTime;column:log_date" json:"log_date"`
}

func (Symptom) TableName() string {
  return "Symptoms"
}
