package types

import (
  "time"
  "gorm.io/datatypes"
)

// UserToken stores third-party OAuth tokens verbatim as handed back by the
// callback flow. No refresh or rotation logic lives server-side.
type UserToken struct {
  ID            int64            `gorm:"column:token_id;primaryKey;autoIncrement" json:"token_id"`
  UserID        int64            `gorm:"index;not null;column:user_id" json:"user_id"`
  AccessToken   string           `gorm:"not null;column:access_token" json:"access_token"`
  RefreshToken  *string          `gorm:"column:refresh_token" json:"refresh_token,omitempty"`
  ExpiresAt     *string          `gorm:"column:expires_at" json:"expires_at,omitempty"`
  Scopes        datatypes.JSON   `gorm:"column:scopes" json:"scopes,omitempty"`
  CreatedAt     time.Time        `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
}

func (UserToken) TableName() string {
  return "UserTokens"
}
