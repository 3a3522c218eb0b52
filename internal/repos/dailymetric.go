package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type DailyMetricRepo interface {
  Create(ctx context.Context, tx *gorm.DB, metric *types.DailyMetric) (*types.DailyMetric, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID int64, date string, limit int) ([]*types.DailyMetric, error)
}

type dailyMetricRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewDailyMetricRepo(db *gorm.DB, baseLog *logger.Logger) DailyMetricRepo {
  repoLog := baseLog.With("repo", "DailyMetricRepo")
  return &dailyMetricRepo{db: db, log: repoLog}
}

func (r *dailyMetricRepo) Create(ctx context.Context, tx *gorm.DB, metric *types.DailyMetric) (*types.DailyMetric, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(metric).Error; err != nil {
    return nil, err
  }
  return metric, nil
}

func (r *dailyMetricRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID int64, date string, limit int) ([]*types.DailyMetric, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  q := transaction.WithContext(ctx).
    Where("user_id = ?", userID)
  if date != "" {
    q = q.Where("date = ?", date)
  }
  q = q.Order("date DESC")
  if limit > 0 {
    q = q.Limit(limit)
  }

  var results []*types.DailyMetric
  if err := q.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
