package services

import (
  "context"

  "gorm.io/gorm"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/repos"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type DisorderService interface {
  CreateDisorder(ctx context.Context, disorder *types.Disorder) (*types.Disorder, error)
  GetAllDisorders(ctx context.Context) ([]*types.Disorder, error)
  AssignToUser(ctx context.Context, assignment *types.UserDisorder) (*types.UserDisorder, error)
  GetUserDisorders(ctx context.Context, userID int64) ([]*types.UserDisorderDetail, error)
}

type disorderService struct {
  db           *gorm.DB
  log          *logger.Logger
  disorderRepo repos.DisorderRepo
}

func NewDisorderService(db *gorm.DB, baseLog *logger.Logger, disorderRepo repos.DisorderRepo) DisorderService {
  return &disorderService{
    db:           db,
    log:          baseLog.With("service", "DisorderService"),
    disorderRepo: disorderRepo,
  }
}

func (s *disorderService) CreateDisorder(ctx context.Context, disorder *types.Disorder) (*types.Disorder, error) {
  var created *types.Disorder
  err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var err error
    created, err = s.disorderRepo.CreateDisorder(ctx, tx, disorder)
    return err
  })
  if err != nil {
    return nil, err
  }
  return created, nil
}

func (s *disorderService) GetAllDisorders(ctx context.Context) ([]*types.Disorder, error) {
  return s.disorderRepo.GetAllDisorders(ctx, nil)
}

func (s *disorderService) AssignToUser(ctx context.Context, assignment *types.UserDisorder) (*types.UserDisorder, error) {
  var created *types.UserDisorder
  err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var err error
    created, err = s.disorderRepo.AssignToUser(ctx, tx, assignment)
    return err
  })
  if err != nil {
    return nil, err
  }
  return created, nil
}

func (s *disorderService) GetUserDisorders(ctx context.Context, userID int64) ([]*types.UserDisorderDetail, error) {
  return s.disorderRepo.GetUserDisorders(ctx, nil, userID)
}
