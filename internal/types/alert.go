package types

import (
  "time"
)

// Alert is a scheduled reminder; soft-deactivated via IsActive or hard-deleted.
type Alert struct {
  ID         int64       `gorm:"column:alert_id;primaryKey;autoIncrement" json:"alert_id"`
  UserID     int64       `gorm:"index;not null;column:user_id" json:"user_id"`
  Type       string      `gorm:"not null;column:alert_type" json:"alert_type"`
  Title      string      `gorm:"not null;column:title" json:"title"`
  Message    string      `gorm:"not null;column:message" json:"message"`
  AlertTime  string      `gorm:"not null;column:alert_time" json:"alert_time"`
  IsActive   bool        `gorm:"not null;default:true;column:is_active" json:"is_active"`
  CreatedAt  time.Time   `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
}

func (Alert) TableName() string {
  return "Alerts"
}
