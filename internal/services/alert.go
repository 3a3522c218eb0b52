package services

import (
  "context"

  "gorm.io/gorm"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/repos"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type AlertService interface {
  Create(ctx context.Context, alert *types.Alert) (*types.Alert, error)
  GetForUser(ctx context.Context, userID int64, activeOnly bool, limit int) ([]*types.Alert, error)
  GetUpcoming(ctx context.Context, userID int64, hoursAhead int) ([]*types.Alert, error)
  Update(ctx context.Context, alertID, userID int64, patch *repos.AlertPatch) (*types.Alert, error)
  Deactivate(ctx context.Context, alertID, userID int64) error
  Delete(ctx context.Context, alertID, userID int64) error
  ActiveCount(ctx context.Context, userID int64) (int64, error)
}

type alertService struct {
  db        *gorm.DB
  log       *logger.Logger
  alertRepo repos.AlertRepo
}

func NewAlertService(db *gorm.DB, baseLog *logger.Logger, alertRepo repos.AlertRepo) AlertService {
  return &alertService{
    db:        db,
    log:       baseLog.With("service", "AlertService"),
    alertRepo: alertRepo,
  }
}

func (s *alertService) Create(ctx context.Context, alert *types.Alert) (*types.Alert, error) {
  var created *types.Alert
  err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var err error
    created, err = s.alertRepo.Create(ctx, tx, alert)
    return err
  })
  if err != nil {
    return nil, err
  }
  return created, nil
}

func (s *alertService) GetForUser(ctx context.Context, userID int64, activeOnly bool, limit int) ([]*types.Alert, error) {
  return s.alertRepo.GetByUserID(ctx, nil, userID, activeOnly, limit)
}

func (s *alertService) GetUpcoming(ctx context.Context, userID int64, hoursAhead int) ([]*types.Alert, error) {
  return s.alertRepo.GetUpcoming(ctx, nil, userID, hoursAhead)
}

func (s *alertService) Update(ctx context.Context, alertID, userID int64, patch *repos.AlertPatch) (*types.Alert, error) {
  var updated *types.Alert
  err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var err error
    updated, err = s.alertRepo.Update(ctx, tx, alertID, userID, patch)
    return err
  })
  if err != nil {
    return nil, err
  }
  return updated, nil
}

func (s *alertService) Deactivate(ctx context.Context, alertID, userID int64) error {
  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    return s.alertRepo.Deactivate(ctx, tx, alertID, userID)
  })
}

func (s *alertService) Delete(ctx context.Context, alertID, userID int64) error {
  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    return s.alertRepo.Delete(ctx, tx, alertID, userID)
  })
}

func (s *alertService) ActiveCount(ctx context.Context, userID int64) (int64, error) {
  return s.alertRepo.ActiveCount(ctx, nil, userID)
}
