package repos

import (
  "context"
  "fmt"
  "time"
  "gorm.io/gorm"
  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type SymptomRepo interface {
  Create(ctx context.Context, tx *gorm.DB, symptom *types.Symptom) (*types.Symptom, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID int64, limit int) ([]*types.Symptom, error)
  GetRecent(ctx context.Context, tx *gorm.DB, userID int64, days int, limit int) ([]*types.Symptom, error)
}

type symptomRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSymptomRepo(db *gorm.DB, baseLog *logger.Logger) SymptomRepo {
  repoLog := baseLog.With("repo", "SymptomRepo")
  return &symptomRepo{db: db, log: repoLog}
}

func (r *symptomRepo) Create(ctx context.Context, tx *gorm.DB, symptom *types.Symptom) (*types.Symptom, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if symptom.Symptom == "" {
    return nil, fmt.Errorf("symptom text required")
  }

  if err := transaction.WithContext(ctx).Create(symptom).Error; err != nil {
    return nil, err
  }
  return symptom, nil
}

func (r *symptomRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID int64, limit int) ([]*types.Symptom, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  q := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("log_date DESC")
  if limit > 0 {
    q = q.Limit(limit)
  }

  var results []*types.Symptom
  if err := q.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *symptomRepo) GetRecent(ctx context.Context, tx *gorm.DB, userID int64, days int, limit int) ([]*types.Symptom, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if days <= 0 {
    days = 7
  }
  cutoff := time.Now().UTC().AddDate(0, 0, -days)

  q := transaction.WithContext(ctx).
    Where("user_id = ? AND log_date >= ?", userID, cutoff).
    Order("log_date DESC")
  if limit > 0 {
    q = q.Limit(limit)
  }

  var results []*types.Symptom
  if err := q.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
