package services

import (
  "context"

  "gorm.io/gorm"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/repos"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type UserService interface {
  Create(ctx context.Context, user *types.User) (*types.User, error)
  GetAll(ctx context.Context) ([]*types.User, error)
  GetByID(ctx context.Context, userID int64) (*types.User, error)
  UpdateProfile(ctx context.Context, userID int64, patch *repos.UserProfilePatch) (*types.User, error)
}

type userService struct {
  db       *gorm.DB
  log      *logger.Logger
  userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo) UserService {
  return &userService{
    db:       db,
    log:      baseLog.With("service", "UserService"),
    userRepo: userRepo,
  }
}

func (s *userService) Create(ctx context.Context, user *types.User) (*types.User, error) {
  var created *types.User
  err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var err error
    created, err = s.userRepo.Create(ctx, tx, user)
    return err
  })
  if err != nil {
    return nil, err
  }
  return created, nil
}

func (s *userService) GetAll(ctx context.Context) ([]*types.User, error) {
  return s.userRepo.GetAll(ctx, nil)
}

func (s *userService) GetByID(ctx context.Context, userID int64) (*types.User, error) {
  return s.userRepo.GetByID(ctx, nil, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, patch *repos.UserProfilePatch) (*types.User, error) {
  var updated *types.User
  err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var err error
    updated, err = s.userRepo.UpdateProfile(ctx, tx, userID, patch)
    return err
  })
  if err != nil {
    return nil, err
  }
  return updated, nil
}
