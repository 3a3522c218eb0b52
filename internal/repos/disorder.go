package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type DisorderRepo interface {
  CreateDisorder(ctx context.Context, tx *gorm.DB, disorder *types.Disorder) (*types.Disorder, error)
  GetAllDisorders(ctx context.Context, tx *gorm.DB) ([]*types.Disorder, error)
  AssignToUser(ctx context.Context, tx *gorm.DB, assignment *types.UserDisorder) (*types.UserDisorder, error)
  GetUserDisorders(ctx context.Context, tx *gorm.DB, userID int64) ([]*types.UserDisorderDetail, error)
  GetUserDisordersByDate(ctx context.Context, tx *gorm.DB, userID int64, date string) ([]*types.UserDisorderDetail, error)
}

type disorderRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewDisorderRepo(db *gorm.DB, baseLog *logger.Logger) DisorderRepo {
  repoLog := baseLog.With("repo", "DisorderRepo")
  return &disorderRepo{db: db, log: repoLog}
}

func (r *disorderRepo) CreateDisorder(ctx context.Context, tx *gorm.DB, disorder *types.Disorder) (*types.Disorder, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(disorder).Error; err != nil {
    return nil, err
  }
  return disorder, nil
}

func (r *disorderRepo) GetAllDisorders(ctx context.Context, tx *gorm.DB) ([]*types.Disorder, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Disorder
  if err := transaction.WithContext(ctx).
    Order("name ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *disorderRepo) AssignToUser(ctx context.Context, tx *gorm.DB, assignment *types.UserDisorder) (*types.UserDisorder, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(assignment).Error; err != nil {
    return nil, err
  }
  return assignment, nil
}

const userDisorderSelect = `
  ud.user_disorder_id, ud.user_id, ud.disorder_id, ud.diagnosed_date, ud.resolved_date,
  d.name AS disorder_name, d.description`

func (r *disorderRepo) GetUserDisorders(ctx context.Context, tx *gorm.DB, userID int64) ([]*types.UserDisorderDetail, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.UserDisorderDetail
  if err := transaction.WithContext(ctx).
    Table(`UserDisorders AS ud`).
    Select(userDisorderSelect).
    Joins(`JOIN Disorders d ON ud.disorder_id = d.disorder_id`).
    Where("ud.user_id = ?", userID).
    Order("ud.diagnosed_date DESC").
    Scan(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *disorderRepo) GetUserDisordersByDate(ctx context.Context, tx *gorm.DB, userID int64, date string) ([]*types.UserDisorderDetail, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.UserDisorderDetail
  if err := transaction.WithContext(ctx).
    Table(`UserDisorders AS ud`).
    Select(userDisorderSelect).
    Joins(`JOIN Disorders d ON ud.disorder_id = d.disorder_id`).
    Where("ud.user_id = ? AND (ud.diagnosed_date = ? OR ud.resolved_date = ?)", userID, date, date).
    Order("ud.diagnosed_date DESC").
    Scan(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
