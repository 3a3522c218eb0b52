package services

import (
  "context"

  "gorm.io/gorm"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/repos"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type SymptomService interface {
  Log(ctx context.Context, symptom *types.Symptom) (*types.Symptom, error)
  GetForUser(ctx context.Context, userID int64, limit int) ([]*types.Symptom, error)
  GetRecent(ctx context.Context, userID int64, days, limit int) ([]*types.Symptom, error)
}

type symptomService struct {
  db          *gorm.DB
  log         *logger.Logger
  symptomRepo repos.SymptomRepo
}

func NewSymptomService(db *gorm.DB, baseLog *logger.Logger, symptomRepo repos.SymptomRepo) SymptomService {
  return &symptomService{
    db:          db,
    log:         baseLog.With("service", "SymptomService"),
    symptomRepo: symptomRepo,
  }
}

func (s *symptomService) Log(ctx context.Context, symptom *types.Symptom) (*types.Symptom, error) {
  var created *types.Symptom
  err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var err error
    created, err = s.symptomRepo.Create(ctx, tx, symptom)
    return err
  })
  if err != nil {
    return nil, err
  }
  return created, nil
}

func (s *symptomService) GetForUser(ctx context.Context, userID int64, limit int) ([]*types.Symptom, error) {
  return s.symptomRepo.GetByUserID(ctx, nil, userID, limit)
}

func (s *symptomService) GetRecent(ctx context.Context, userID int64, days, limit int) ([]*types.Symptom, error) {
  return s.symptomRepo.GetRecent(ctx, nil, userID, days, limit)
}
