package types

// Report rows are inserted and never updated.
type Report struct {
  ID          int64     `gorm:"column:report_id;primaryKey;autoIncrement" json:"report_id"`
  UserID      int64     `gorm:"index;not null;column:user_id" json:"user_id"`
  ReportDate  string    `gorm:"not null;column:report_date" json:"report_date"`
  ReportType  *string   `gorm:"column:report_type" json:"report_type,omitempty"`
  Content     *string   `gorm:"column:content" json:"content,omitempty"`
}

func (Report) TableName() string {
  return "Reports"
}
