package types

// Disorder is a catalog entry created once and reused across users.
type Disorder struct {
  ID           int64      `gorm:"column:disorder_id;primaryKey;autoIncrement" json:"disorder_id"`
  Name         string     `gorm:"not null;column:name" json:"name"`
  Description  *string    `gorm:"column:description" json:"description,omitempty"`

  Assignments  []UserDisorder  `gorm:"foreignKey:DisorderID" json:"-"`
}

func (Disorder) TableName() string {
  return "Disorders"
}

// UserDisorder joins a user to a catalog disorder, one row per diagnosis.
type UserDisorder struct {
  ID             int64      `gorm:"column:user_disorder_id;primaryKey;autoIncrement" json:"user_disorder_id"`
  UserID         int64      `gorm:"index;not null;column:user_id" json:"user_id"`
  DisorderID     int64      `gorm:"index;not null;column:disorder_id" json:"disorder_id"`
  DiagnosedDate  string     `gorm:"not null;column:diagnosed_date" json:"diagnosed_date"`
  ResolvedDate   *string    `gorm:"column:resolved_date" json:"resolved_date,omitempty"`
}

func (UserDisorder) TableName() string {
  return "UserDisorders"
}

// UserDisorderDetail is the joined row shape returned by user-facing reads.
type UserDisorderDetail struct {
  UserDisorderID  int64     `json:"user_disorder_id"`
  UserID          int64     `json:"user_id"`
  DisorderID      int64     `json:"disorder_id"`
  DiagnosedDate   string    `json:"diagnosed_date"`
  ResolvedDate    *string   `json:"resolved_date,omitempty"`
  DisorderName    string    `json:"disorder_name"`
  Description     *string   `json:"description,omitempty"`
}
