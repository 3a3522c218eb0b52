package services

import (
  "context"

  "gorm.io/gorm"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/repos"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type NotificationService interface {
  Create(ctx context.Context, notification *types.Notification) (*types.Notification, error)
  GetForUser(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]*types.Notification, error)
  MarkRead(ctx context.Context, notificationID, userID int64) error
  MarkAllRead(ctx context.Context, userID int64) (int64, error)
  UnreadCount(ctx context.Context, userID int64) (int64, error)
  Delete(ctx context.Context, notificationID, userID int64) error
}

type notificationService struct {
  db               *gorm.DB
  log              *logger.Logger
  notificationRepo repos.NotificationRepo
}

func NewNotificationService(db *gorm.DB, baseLog *logger.Logger, notificationRepo repos.NotificationRepo) NotificationService {
  return &notificationService{
    db:               db,
    log:              baseLog.With("service", "NotificationService"),
    notificationRepo: notificationRepo,
  }
}

func (s *notificationService) Create(ctx context.Context, notification *types.Notification) (*types.Notification, error) {
  var created *types.Notification
  err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var err error
    created, err = s.notificationRepo.Create(ctx, tx, notification)
    return err
  })
  if err != nil {
    return nil, err
  }
  return created, nil
}

func (s *notificationService) GetForUser(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]*types.Notification, error) {
  return s.notificationRepo.GetByUserID(ctx, nil, userID, unreadOnly, limit)
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID, userID int64) error {
  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    return s.notificationRepo.MarkRead(ctx, tx, notificationID, userID)
  })
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
  var updated int64
  err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var err error
    updated, err = s.notificationRepo.MarkAllRead(ctx, tx, userID)
    return err
  })
  if err != nil {
    return 0, err
  }
  return updated, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
  return s.notificationRepo.UnreadCount(ctx, nil, userID)
}

func (s *notificationService) Delete(ctx context.Context, notificationID, userID int64) error {
  return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    return s.notificationRepo.Delete(ctx, tx, notificationID, userID)
  })
}
