package types

// Medication is a catalog entry shared across users.
type Medication struct {
  ID           int64     `gorm:"column:medication_id;primaryKey;autoIncrement" json:"medication_id"`
  Name         string    `gorm:"not null;column:name" json:"name"`
  Dosage       *string   `gorm:"column:dosage" json:"dosage,omitempty"`
  Description  *string   `gorm:"column:description" json:"description,omitempty"`

  Assignments  []UserMedication  `gorm:"foreignKey:MedicationID" json:"-"`
}

func (Medication) TableName() string {
  return "Medications"
}

// UserMedication assigns a catalog medication to a user for a period.
type UserMedication struct {
  ID            int64        `gorm:"column:user_med_id;primaryKey;autoIncrement" json:"user_med_id"`
  UserID        int64        `gorm:"index;not null;column:user_id" json:"user_id"`
  MedicationID  int64        `gorm:"index;not null;column:medication_id" json:"medication_id"`
  StartDate     string       `gorm:"not null;column:start_date" json:"start_date"`
  EndDate       *string      `gorm:"column:end_date" json:"end_date,omitempty"`
  Frequency     *string      `gorm:"column:frequency" json:"frequency,omitempty"`

  Schedule      []MedicationSchedule  `gorm:"foreignKey:UserMedID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserMedication) TableName() string {
  return "UserMedications"
}

// MedicationSchedule holds one row per planned dose. Status starts at
// "pending" and is mutated as doses are taken or skipped.
type MedicationSchedule struct {
  ID         int64            `gorm:"column:schedule_id;primaryKey;autoIncrement" json:"schedule_id"`
  UserMedID  int64            `gorm:"index;not null;column:user_med_id" json:"user_med_id"`
  Date       string           `gorm:"not null;column:date" json:"date"`
  Time       string           `gorm:"not null;column:time" json:"time"`
  Status     string           `gorm:"not null;default:pending;column:status" json:"status"`
}

func (MedicationSchedule) TableName() string {
  return "MedicationSchedule"
}

// UserMedicationDetail is the joined assignment row shape.
type UserMedicationDetail struct {
  UserMedID       int64     `json:"user_med_id"`
  UserID          int64     `json:"user_id"`
  MedicationID    int64     `json:"medication_id"`
  StartDate       string    `json:"start_date"`
  EndDate         *string   `json:"end_date,omitempty"`
  Frequency       *string   `json:"frequency,omitempty"`
  MedicationName  string    `json:"medication_name"`
  Dosage          *string   `json:"dosage,omitempty"`
  Description     *string   `json:"description,omitempty"`
}

// MedicationScheduleDetail is the joined per-dose row shape.
type MedicationScheduleDetail struct {
  ScheduleID      int64     `json:"schedule_id"`
  UserMedID       int64     `json:"user_med_id"`
  Date            string    `json:"date"`
  Time            string    `json:"time"`
  Status          string    `json:"status"`
  MedicationName  string    `json:"medication_name"`
  Dosage          *string   `json:"dosage,omitempty"`
  Description     *string   `json:"description,omitempty"`
  Frequency       *string   `json:"frequency,omitempty"`
}
