package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type UserTokenRepo interface {
  Create(ctx context.Context, tx *gorm.DB, token *types.UserToken) (*types.UserToken, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID int64) ([]*types.UserToken, error)
  GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID int64) (*types.UserToken, error)
}

type userTokenRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
  repoLog := baseLog.With("repo", "UserTokenRepo")
  return &userTokenRepo{db: db, log: repoLog}
}

func (r *userTokenRepo) Create(ctx context.Context, tx *gorm.DB, token *types.UserToken) (*types.UserToken, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(token).Error; err != nil {
    return nil, err
  }
  return token, nil
}

func (r *userTokenRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID int64) ([]*types.UserToken, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.UserToken
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *userTokenRepo) GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID int64) (*types.UserToken, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var token types.UserToken
  err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC").
    First(&token).Error
  if err != nil {
    if err == gorm.ErrRecordNotFound {
      return nil, nil
    }
    return nil, err
  }
  return &token, nil
}
