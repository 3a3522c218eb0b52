package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/caretrack/caretrack-backend/internal/apierr"
  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type NotificationRepo interface {
  Create(ctx context.Context, tx *gorm.DB, notification *types.Notification) (*types.Notification, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID int64, unreadOnly bool, limit int) ([]*types.Notification, error)
  MarkRead(ctx context.Context, tx *gorm.DB, notificationID, userID int64) error
  MarkAllRead(ctx context.Context, tx *gorm.DB, userID int64) (int64, error)
  UnreadCount(ctx context.Context, tx *gorm.DB, userID int64) (int64, error)
  Delete(ctx context.Context, tx *gorm.DB, notificationID, userID int64) error
}

type notificationRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewNotificationRepo(db *gorm.DB, baseLog *logger.Logger) NotificationRepo {
  repoLog := baseLog.With("repo", "NotificationRepo")
  return &notificationRepo{db: db, log: repoLog}
}

func (r *notificationRepo) Create(ctx context.Context, tx *gorm.DB, notification *types.Notification) (*types.Notification, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(notification).Error; err != nil {
    return nil, err
  }
  return notification, nil
}

func (r *notificationRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID int64, unreadOnly bool, limit int) ([]*types.Notification, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  q := transaction.WithContext(ctx).
    Where("user_id = ?", userID)
  if unreadOnly {
    q = q.Where("is_read = ?", false)
  }
  q = q.Order("created_at DESC")
  if limit > 0 {
    q = q.Limit(limit)
  }

  var results []*types.Notification
  if err := q.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// MarkRead is ownership-scoped: a mismatched user never flips another
// user's notification.
func (r *notificationRepo) MarkRead(ctx context.Context, tx *gorm.DB, notificationID, userID int64) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  res := transaction.WithContext(ctx).
    Model(&types.Notification{}).
    Where("notification_id = ? AND user_id = ?", notificationID, userID).
    Update("is_read", true)
  if res.Error != nil {
    return res.Error
  }
  if res.RowsAffected == 0 {
    return apierr.NotFound("notification_not_found", gorm.ErrRecordNotFound)
  }
  return nil
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, tx *gorm.DB, userID int64) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  res := transaction.WithContext(ctx).
    Model(&types.Notification{}).
    Where("user_id = ? AND is_read = ?", userID, false).
    Update("is_read", true)
  if res.Error != nil {
    return 0, res.Error
  }
  return res.RowsAffected, nil
}

func (r *notificationRepo) UnreadCount(ctx context.Context, tx *gorm.DB, userID int64) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Notification{}).
    Where("user_id = ? AND is_read = ?", userID, false).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (r *notificationRepo) Delete(ctx context.Context, tx *gorm.DB, notificationID, userID int64) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  res := transaction.WithContext(ctx).
    Where("notification_id = ? AND user_id = ?", notificationID, userID).
    Delete(&types.Notification{})
  if res.Error != nil {
    return res.Error
  }
  if res.RowsAffected == 0 {
    return apierr.NotFound("notification_not_found", gorm.ErrRecordNotFound)
  }
  return nil
}
