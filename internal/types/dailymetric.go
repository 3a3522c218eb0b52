package types

// DailyMetric holds one row per day of wearable-style metrics. Uniqueness of
// (user_id, date) is not enforced; duplicate days are accepted as in the
// upstream data sources.
type DailyMetric struct {
  ID             int64      `gorm:"column:metric_id;primaryKey;autoIncrement" json:"metric_id"`
  UserID         int64      `gorm:"index;not null;column:user_id" json:"user_id"`
  Date           string     `gorm:"not null;index;column:date" json:"date"`
  Steps          *int       `gorm:"column:steps" json:"steps,omitempty"`
  HeartRate      *int       `gorm:"column:heart_rate" json:"heart_rate,omitempty"`
  SleepHours     *float64   `gorm:"column:sleep_hours" json:"sleep_hours,omitempty"`
  BloodPressure  *string    `gorm:"column:blood_pressure" json:"blood_pressure,omitempty"`
  Mood           *string    `gorm:"column:mood" json:"mood,omitempty"`
  Notes          *string    `gorm:"column:notes" json:"notes,omitempty"`
}

func (DailyMetric) TableName() string {
  return "DailyMetrics"
}
