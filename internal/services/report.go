package services

import (
  "context"

  "gorm.io/gorm"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/repos"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type ReportService interface {
  Create(ctx context.Context, report *types.Report) (*types.Report, error)
  GetForUser(ctx context.Context, userID int64, reportType string, limit int) ([]*types.Report, error)
}

type reportService struct {
  db         *gorm.DB
  log        *logger.Logger
  reportRepo repos.ReportRepo
}

func NewReportService(db *gorm.DB, baseLog *logger.Logger, reportRepo repos.ReportRepo) ReportService {
  return &reportService{
    db:         db,
    log:        baseLog.With("service", "ReportService"),
    reportRepo: reportRepo,
  }
}

func (s *reportService) Create(ctx context.Context, report *types.Report) (*types.Report, error) {
  var created *types.Report
  err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var err error
    created, err = s.reportRepo.Create(ctx, tx, report)
    return err
  })
  if err != nil {
    return nil, err
  }
  return created, nil
}

func (s *reportService) GetForUser(ctx context.Context, userID int64, reportType string, limit int) ([]*types.Report, error) {
  return s.reportRepo.GetByUserID(ctx, nil, userID, reportType, limit)
}
