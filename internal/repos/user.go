package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/caretrack/caretrack-backend/internal/apierr"
  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/types"
)

// UserProfilePatch enumerates every profile field a caller may update.
// Fields left nil are not touched. Raw field names from request bodies are
// never used as column names; this struct is the allow-list.
type UserProfilePatch struct {
  Name               *string    `json:"name,omitempty"`
  Age                *int       `json:"age,omitempty"`
  Gender             *string    `json:"gender,omitempty"`
  Email              *string    `json:"email,omitempty"`
  HeightCm           *float64   `json:"height_cm,omitempty"`
  WeightKg           *float64   `json:"weight_kg,omitempty"`
  BMI                *float64   `json:"bmi,omitempty"`
  BloodGroup         *string    `json:"blood_group,omitempty"`
  ActivityLevel      *string    `json:"activity_level,omitempty"`
  GymMember          *bool      `json:"gym_member,omitempty"`
  Smoker             *bool      `json:"smoker,omitempty"`
  Alcohol            *bool      `json:"alcohol,omitempty"`
  Medications        *bool      `json:"medications,omitempty"`
  EverHospitalized   *bool      `json:"ever_hospitalized,omitempty"`
  EverConcussion     *bool      `json:"ever_concussion,omitempty"`
  Allergies          *string    `json:"allergies,omitempty"`
  MedicalConditions  *string    `json:"medical_conditions,omitempty"`
  AvgSleepHours      *float64   `json:"avg_sleep_hours,omitempty"`
  AvgBloodPressure   *string    `json:"avg_blood_pressure,omitempty"`
  AvgHeartRate       *int       `json:"avg_heart_rate,omitempty"`
  AvgWaterIntake     *float64   `json:"avg_water_intake,omitempty"`
  CholesterolLevel   *float64   `json:"cholesterol_level,omitempty"`
  BloodSugarLevel    *float64   `json:"blood_sugar_level,omitempty"`
  StepsPerDay        *int       `json:"steps_per_day,omitempty"`
  LastCheckup        *string    `json:"last_checkup,omitempty"`
  EmergencyContact   *string    `json:"emergency_contact,omitempty"`
}

func (p *UserProfilePatch) columns() map[string]any {
  out := map[string]any{}
  if p == nil {
    return out
  }
  setIf(out, "name", p.Name)
  setIf(out, "age", p.Age)
  setIf(out, "gender", p.Gender)
  setIf(out, "email", p.Email)
  setIf(out, "height_cm", p.HeightCm)
  setIf(out, "weight_kg", p.WeightKg)
  setIf(out, "bmi", p.BMI)
  setIf(out, "blood_group", p.BloodGroup)
  setIf(out, "activity_level", p.ActivityLevel)
  setIf(out, "gym_member", p.GymMember)
  setIf(out, "smoker", p.Smoker)
  setIf(out, "alcohol", p.Alcohol)
  setIf(out, "medications", p.Medications)
  setIf(out, "ever_hospitalized", p.EverHospitalized)
  setIf(out, "ever_concussion", p.EverConcussion)
  setIf(out, "allergies", p.Allergies)
  setIf(out, "medical_conditions", p.MedicalConditions)
  setIf(out, "avg_sleep_hours", p.AvgSleepHours)
  setIf(out, "avg_blood_pressure", p.AvgBloodPressure)
  setIf(out, "avg_heart_rate", p.AvgHeartRate)
  setIf(out, "avg_water_intake", p.AvgWaterIntake)
  setIf(out, "cholesterol_level", p.CholesterolLevel)
  setIf(out, "blood_sugar_level", p.BloodSugarLevel)
  setIf(out, "steps_per_day", p.StepsPerDay)
  setIf(out, "last_checkup", p.LastCheckup)
  setIf(out, "emergency_contact", p.EmergencyContact)
  return out
}

func setIf[T any](m map[string]any, column string, v *T) {
  if v != nil {
    m[column] = *v
  }
}

type UserRepo interface {
  Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error)
  GetByID(ctx context.Context, tx *gorm.DB, userID int64) (*types.User, error)
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.User, error)
  UpdateProfile(ctx context.Context, tx *gorm.DB, userID int64, patch *UserProfilePatch) (*types.User, error)
}

type userRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
  repoLog := baseLog.With("repo", "UserRepo")
  return &userRepo{db: db, log: repoLog}
}

func (r *userRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(user).Error; err != nil {
    return nil, err
  }
  return user, nil
}

func (r *userRepo) GetByID(ctx context.Context, tx *gorm.DB, userID int64) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var user types.User
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    First(&user).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apierr.NotFound("user_not_found", err)
    }
    return nil, err
  }
  return &user, nil
}

func (r *userRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.User
  if err := transaction.WithContext(ctx).
    Order("name ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, tx *gorm.DB, userID int64, patch *UserProfilePatch) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  columns := patch.columns()
  if len(columns) == 0 {
    return nil, apierr.Validation("empty_update", errors.New("no fields provided for update"))
  }

  res := transaction.WithContext(ctx).
    Model(&types.User{}).
    Where("user_id = ?", userID).
    Updates(columns)
  if res.Error != nil {
    return nil, res.Error
  }
  if res.RowsAffected == 0 {
    return nil, apierr.NotFound("user_not_found", gorm.ErrRecordNotFound)
  }

  return r.GetByID(ctx, transaction, userID)
}
