package services

import (
  "context"

  "gorm.io/gorm"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/repos"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type MedicationService interface {
  CreateMedication(ctx context.Context, medication *types.Medication) (*types.Medication, error)
  GetAllMedications(ctx context.Context) ([]*types.Medication, error)
  AssignToUser(ctx context.Context, assignment *types.UserMedication) (*types.UserMedication, error)
  GetUserMedications(ctx context.Context, userID int64) ([]*types.UserMedicationDetail, error)
  AddScheduleEntry(ctx context.Context, entry *types.MedicationSchedule) (*types.MedicationSchedule, error)
  GetSchedule(ctx context.Context, userID int64, date string) ([]*types.MedicationScheduleDetail, error)
}

type medicationService struct {
  db             *gorm.DB
  log            *logger.Logger
  medicationRepo repos.MedicationRepo
}

func NewMedicationService(db *gorm.DB, baseLog *logger.Logger, medicationRepo repos.MedicationRepo) MedicationService {
  return &medicationService{
    db:             db,
    log:            baseLog.With("service", "MedicationService"),
    medicationRepo: medicationRepo,
  }
}

func (s *medicationService) CreateMedication(ctx context.Context, medication *types.Medication) (*types.Medication, error) {
  var created *types.Medication
  err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var err error
    created, err = s.medicationRepo.CreateMedication(ctx, tx, medication)
    return err
  })
  if err != nil {
    return nil, err
  }
  return created, nil
}

func (s *medicationService) GetAllMedications(ctx context.Context) ([]*types.Medication, error) {
  return s.medicationRepo.GetAllMedications(ctx, nil)
}

func (s *medicationService) AssignToUser(ctx context.Context, assignment *types.UserMedication) (*types.UserMedication, error) {
  var created *types.UserMedication
  err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var err error
    created, err = s.medicationRepo.AssignToUser(ctx, tx, assignment)
    return err
  })
  if err != nil {
    return nil, err
  }
  return created, nil
}

func (s *medicationService) GetUserMedications(ctx context.Context, userID int64) ([]*types.UserMedicationDetail, error) {
  return s.medicationRepo.GetUserMedications(ctx, nil, userID)
}

func (s *medicationService) AddScheduleEntry(ctx context.Context, entry *types.MedicationSchedule) (*types.MedicationSchedule, error) {
  var created *types.MedicationSchedule
  err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var err error
    created, err = s.medicationRepo.CreateScheduleEntry(ctx, tx, entry)
    return err
  })
  if err != nil {
    return nil, err
  }
  return created, nil
}

func (s *medicationService) GetSchedule(ctx context.Context, userID int64, date string) ([]*types.MedicationScheduleDetail, error) {
  return s.medicationRepo.GetScheduleByUser(ctx, nil, userID, date)
}
