package types

import (
  "time"
  "gorm.io/gorm"
)

// User is the root of every other record. Rows are soft-deleted only.
type User struct {
  ID                 int64           `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
  Name               string          `gorm:"not null;column:name" json:"name"`
  Age                *int            `gorm:"column:age" json:"age,omitempty"`
  Gender             *string         `gorm:"column:gender" json:"gender,omitempty"`
  Email              *string         `gorm:"column:email" json:"email,omitempty"`
  HeightCm           *float64        `gorm:"column:height_cm" json:"height_cm,omitempty"`
  WeightKg           *float64        `gorm:"column:weight_kg" json:"weight_kg,omitempty"`
  BMI                *float64        `gorm:"column:bmi" json:"bmi,omitempty"`
  BloodGroup         *string         `gorm:"column:blood_group" json:"blood_group,omitempty"`
  ActivityLevel      *string         `gorm:"column:activity_level" json:"activity_level,omitempty"`
  GymMember          *bool           `gorm:"column:gym_member" json:"gym_member,omitempty"`
  Smoker             *bool           `gorm:"column:smoker" json:"smoker,omitempty"`
  Alcohol            *bool           `gorm:"column:alcohol" json:"alcohol,omitempty"`
  Medications        *bool           `gorm:"column:medications" json:"medications,omitempty"`
  EverHospitalized   *bool           `gorm:"column:ever_hospitalized" json:"ever_hospitalized,omitempty"`
  EverConcussion     *bool           `gorm:"column:ever_concussion" json:"ever_concussion,omitempty"`
  Allergies          *string         `gorm:"column:allergies" json:"allergies,omitempty"`
  MedicalConditions  *string         `gorm:"column:medical_conditions" json:"medical_conditions,omitempty"`
  AvgSleepHours      *float64        `gorm:"column:avg_sleep_hours" json:"avg_sleep_hours,omitempty"`
  AvgBloodPressure   *string         `gorm:"column:avg_blood_pressure" json:"avg_blood_pressure,omitempty"`
  AvgHeartRate       *int            `gorm:"column:avg_heart_rate" json:"avg_heart_rate,omitempty"`
  AvgWaterIntake     *float64        `gorm:"column:avg_water_intake" json:"avg_water_intake,omitempty"`
  CholesterolLevel   *float64        `gorm:"column:cholesterol_level" json:"cholesterol_level,omitempty"`
  BloodSugarLevel    *float64        `gorm:"column:blood_sugar_level" json:"blood_sugar_level,omitempty"`
  StepsPerDay        *int            `gorm:"column:steps_per_day" json:"steps_per_day,omitempty"`
  LastCheckup        *string         `gorm:"column:last_checkup" json:"last_checkup,omitempty"`
  EmergencyContact   *string         `gorm:"column:emergency_contact" json:"emergency_contact,omitempty"`
  YesterdaySummary   *string         `gorm:"column:yesterday_summary" json:"yesterday_summary,omitempty"`
  LastMonthSummary   *string         `gorm:"column:last_month_summary" json:"last_month_summary,omitempty"`
  CreatedAt          time.Time       `gorm:"not null;column:created_at" json:"created_at"`
  UpdatedAt          time.Time       `gorm:"not null;column:updated_at" json:"updated_at"`
  DeletedAt          gorm.DeletedAt  `gorm:"column:deleted_at;index" json:"-"`

  // Owned collections; declared here so migration places the foreign keys on
  // the child tables with cascade delete.
  Symptoms       []Symptom         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
  Disorders      []UserDisorder    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
  Meds           []UserMedication  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
  DailyMetrics   []DailyMetric     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
  Reports        []Report          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
  Notifications  []Notification    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
  Alerts         []Alert           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
  Tokens         []UserToken       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
  return "Users"
}
