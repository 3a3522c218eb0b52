package repos

import (
  "context"
  "time"
  "gorm.io/gorm"
  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type MedicationRepo interface {
  CreateMedication(ctx context.Context, tx *gorm.DB, medication *types.Medication) (*types.Medication, error)
  GetAllMedications(ctx context.Context, tx *gorm.DB) ([]*types.Medication, error)
  AssignToUser(ctx context.Context, tx *gorm.DB, assignment *types.UserMedication) (*types.UserMedication, error)
  GetUserMedications(ctx context.Context, tx *gorm.DB, userID int64) ([]*types.UserMedicationDetail, error)
  CreateScheduleEntry(ctx context.Context, tx *gorm.DB, entry *types.MedicationSchedule) (*types.MedicationSchedule, error)
  GetScheduleByUser(ctx context.Context, tx *gorm.DB, userID int64, date string) ([]*types.MedicationScheduleDetail, error)
  GetRecentSchedule(ctx context.Context, tx *gorm.DB, userID int64, days int, limit int) ([]*types.MedicationScheduleDetail, error)
}

type medicationRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewMedicationRepo(db *gorm.DB, baseLog *logger.Logger) MedicationRepo {
  repoLog := baseLog.With("repo", "MedicationRepo")
  return &medicationRepo{db: db, log: repoLog}
}

func (r *medicationRepo) CreateMedication(ctx context.Context, tx *gorm.DB, medication *types.Medication) (*types.Medication, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(medication).Error; err != nil {
    return nil, err
  }
  return medication, nil
}

func (r *medicationRepo) GetAllMedications(ctx context.Context, tx *gorm.DB) ([]*types.Medication, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Medication
  if err := transaction.WithContext(ctx).
    Order("name ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *medicationRepo) AssignToUser(ctx context.Context, tx *gorm.DB, assignment *types.UserMedication) (*types.UserMedication, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(assignment).Error; err != nil {
    return nil, err
  }
  return assignment, nil
}

func (r *medicationRepo) GetUserMedications(ctx context.Context, tx *gorm.DB, userID int64) ([]*types.UserMedicationDetail, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.UserMedicationDetail
  if err := transaction.WithContext(ctx).
    Table(`UserMedications AS um`).
    Select(`
      um.user_med_id, um.user_id, um.medication_id, um.start_date, um.end_date, um.frequency,
      m.name AS medication_name, m.dosage, m.description`).
    Joins(`JOIN Medications m ON um.medication_id = m.medication_id`).
    Where("um.user_id = ?", userID).
    Order("um.start_date DESC").
    Scan(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *medicationRepo) CreateScheduleEntry(ctx context.Context, tx *gorm.DB, entry *types.MedicationSchedule) (*types.MedicationSchedule, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if entry.Status == "" {
    entry.Status = "pending"
  }

  if err := transaction.WithContext(ctx).Create(entry).Error; err != nil {
    return nil, err
  }
  return entry, nil
}

const scheduleSelect = `
  ms.schedule_id, ms.user_med_id, ms.date, ms.time, ms.status,
  m.name AS medication_name, m.dosage, m.description,
  um.frequency`

func (r *medicationRepo) GetScheduleByUser(ctx context.Context, tx *gorm.DB, userID int64, date string) ([]*types.MedicationScheduleDetail, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  q := transaction.WithContext(ctx).
    Table(`MedicationSchedule AS ms`).
    Select(scheduleSelect).
    Joins(`JOIN UserMedications um ON ms.user_med_id = um.user_med_id`).
    Joins(`JOIN Medications m ON um.medication_id = m.medication_id`).
    Where("um.user_id = ?", userID)
  if date != "" {
    q = q.Where("ms.date = ?", date)
  }

  var results []*types.MedicationScheduleDetail
  if err := q.Order("ms.date DESC, ms.time DESC").Scan(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *medicationRepo) GetRecentSchedule(ctx context.Context, tx *gorm.DB, userID int64, days int, limit int) ([]*types.MedicationScheduleDetail, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if days <= 0 {
    days = 30
  }
  cutoff := time.Now().UTC().AddDate(0, 0, -days).Format("2006-01-02")

  q := transaction.WithContext(ctx).
    Table(`MedicationSchedule AS ms`).
    Select(scheduleSelect).
    Joins(`JOIN UserMedications um ON ms.user_med_id = um.user_med_id`).
    Joins(`JOIN Medications m ON um.medication_id = m.medication_id`).
    Where("um.user_id = ? AND ms.date >= ?", userID, cutoff).
    Order("ms.date DESC, ms.time DESC")
  if limit > 0 {
    q = q.Limit(limit)
  }

  var results []*types.MedicationScheduleDetail
  if err := q.Scan(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
