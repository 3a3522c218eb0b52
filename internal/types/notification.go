package types

import (
  "time"
)

// Notification rows are created by the system or the AI generator; the only
// mutation after insert is the read flag.
type Notification struct {
  ID         int64       `gorm:"column:notification_id;primaryKey;autoIncrement" json:"notification_id"`
  UserID     int64       `gorm:"index;not null;column:user_id" json:"user_id"`
  Title      string      `gorm:"not null;column:title" json:"title"`
  Message    string      `gorm:"not null;column:message" json:"message"`
  Type       *string     `gorm:"column:notification_type" json:"notification_type,omitempty"`
  IsRead     bool        `gorm:"not null;default:false;column:is_read" json:"is_read"`
  CreatedAt  time.Time   `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
}

func (Notification) TableName() string {
  return "Notifications"
}
