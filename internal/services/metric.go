package services

import (
  "context"

  "golang.org/x/sync/errgroup"
  "gorm.io/gorm"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/repos"
  "github.com/caretrack/caretrack-backend/internal/types"
)

// UserDateData groups everything recorded for a user on one calendar date.
type UserDateData struct {
  UserID              int64                               `json:"user_id"`
  Date                string                              `json:"date"`
  DailyMetrics        []*types.DailyMetric                `json:"daily_metrics"`
  MedicationSchedule  []*types.MedicationScheduleDetail   `json:"medication_schedule"`
  Disorders           []*types.UserDisorderDetail         `json:"disorders"`
  Reports             []*types.Report                     `json:"reports"`
}

type MetricService interface {
  Record(ctx context.Context, metric *types.DailyMetric) (*types.DailyMetric, error)
  GetForUser(ctx context.Context, userID int64, date string, limit int) ([]*types.DailyMetric, error)
  GetUserDataByDate(ctx context.Context, userID int64, date string) (*UserDateData, error)
}

type metricService struct {
  db             *gorm.DB
  log            *logger.Logger
  metricRepo     repos.DailyMetricRepo
  medicationRepo repos.MedicationRepo
  disorderRepo   repos.DisorderRepo
  reportRepo     repos.ReportRepo
}

func NewMetricService(
  db *gorm.DB,
  baseLog *logger.Logger,
  metricRepo repos.DailyMetricRepo,
  medicationRepo repos.MedicationRepo,
  disorderRepo repos.DisorderRepo,
  reportRepo repos.ReportRepo,
) MetricService {
  return &metricService{
    db:             db,
    log:            baseLog.With("service", "MetricService"),
    metricRepo:     metricRepo,
    medicationRepo: medicationRepo,
    disorderRepo:   disorderRepo,
    reportRepo:     reportRepo,
  }
}

func (s *metricService) Record(ctx context.Context, metric *types.DailyMetric) (*types.DailyMetric, error) {
  var created *types.DailyMetric
  err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var err error
    created, err = s.metricRepo.Create(ctx, tx, metric)
    return err
  })
  if err != nil {
    return nil, err
  }
  return created, nil
}

func (s *metricService) GetForUser(ctx context.Context, userID int64, date string, limit int) ([]*types.DailyMetric, error) {
  return s.metricRepo.GetByUserID(ctx, nil, userID, date, limit)
}

// GetUserDataByDate fans out to the four dated tables concurrently and
// returns empty slices, not nulls, for tables with no rows.
func (s *metricService) GetUserDataByDate(ctx context.Context, userID int64, date string) (*UserDateData, error) {
  out := &UserDateData{
    UserID:             userID,
    Date:               date,
    DailyMetrics:       []*types.DailyMetric{},
    MedicationSchedule: []*types.MedicationScheduleDetail{},
    Disorders:          []*types.UserDisorderDetail{},
    Reports:            []*types.Report{},
  }

  g, gctx := errgroup.WithContext(ctx)
  g.Go(func() error {
    metrics, err := s.metricRepo.GetByUserID(gctx, nil, userID, date, 0)
    if err != nil {
      return err
    }
    if metrics != nil {
      out.DailyMetrics = metrics
    }
    return nil
  })
  g.Go(func() error {
    schedule, err := s.medicationRepo.GetScheduleByUser(gctx, nil, userID, date)
    if err != nil {
      return err
    }
    if schedule != nil {
      out.MedicationSchedule = schedule
    }
    return nil
  })
  g.Go(func() error {
    disorders, err := s.disorderRepo.GetUserDisordersByDate(gctx, nil, userID, date)
    if err != nil {
      return err
    }
    if disorders != nil {
      out.Disorders = disorders
    }
    return nil
  })
  g.Go(func() error {
    reports, err := s.reportRepo.GetByUserAndDate(gctx, nil, userID, date)
    if err != nil {
      return err
    }
    if reports != nil {
      out.Reports = reports
    }
    return nil
  })
  if err := g.Wait(); err != nil {
    return nil, err
  }

  return out, nil
}
