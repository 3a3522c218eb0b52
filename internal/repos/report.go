package repos

import (
  "context"
  "time"
  "gorm.io/gorm"
  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type ReportRepo interface {
  Create(ctx context.Context, tx *gorm.DB, report *types.Report) (*types.Report, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID int64, reportType string, limit int) ([]*types.Report, error)
  GetByUserAndDate(ctx context.Context, tx *gorm.DB, userID int64, date string) ([]*types.Report, error)
  GetRecent(ctx context.Context, tx *gorm.DB, userID int64, days int, limit int) ([]*types.Report, error)
}

type reportRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewReportRepo(db *gorm.DB, baseLog *logger.Logger) ReportRepo {
  repoLog := baseLog.With("repo", "ReportRepo")
  return &reportRepo{db: db, log: repoLog}
}

func (r *reportRepo) Create(ctx context.Context, tx *gorm.DB, report *types.Report) (*types.Report, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(report).Error; err != nil {
    return nil, err
  }
  return report, nil
}

func (r *reportRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID int64, reportType string, limit int) ([]*types.Report, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  q := transaction.WithContext(ctx).
    Where("user_id = ?", userID)
  if reportType != "" {
    q = q.Where("report_type = ?", reportType)
  }
  q = q.Order("report_date DESC")
  if limit > 0 {
    q = q.Limit(limit)
  }

  var results []*types.Report
  if err := q.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *reportRepo) GetByUserAndDate(ctx context.Context, tx *gorm.DB, userID int64, date string) ([]*types.Report, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Report
  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND report_date = ?", userID, date).
    Order("report_id DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *reportRepo) GetRecent(ctx context.Context, tx *gorm.DB, userID int64, days int, limit int) ([]*types.Report, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if days <= 0 {
    days = 30
  }
  cutoff := time.Now().UTC().AddDate(0, 0, -days).Format("2006-01-02")

  q := transaction.WithContext(ctx).
    Where("user_id = ? AND report_date >= ?", userID, cutoff).
    Order("report_id DESC")
  if limit > 0 {
    q = q.Limit(limit)
  }

  var results []*types.Report
  if err := q.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
