package repos

import (
  "context"
  "errors"
  "fmt"
  "time"
  "gorm.io/gorm"
  "github.com/caretrack/caretrack-backend/internal/apierr"
  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/types"
)

// AlertPatch enumerates the updatable alert fields; nil fields are skipped.
type AlertPatch struct {
  Type       *string   `json:"alert_type,omitempty"`
  Title      *string   `json:"title,omitempty"`
  Message    *string   `json:"message,omitempty"`
  AlertTime  *string   `json:"alert_time,omitempty"`
  IsActive   *bool     `json:"is_active,omitempty"`
}

func (p *AlertPatch) columns() map[string]any {
  out := map[string]any{}
  if p == nil {
    return out
  }
  setIf(out, "alert_type", p.Type)
  setIf(out, "title", p.Title)
  setIf(out, "message", p.Message)
  setIf(out, "alert_time", p.AlertTime)
  setIf(out, "is_active", p.IsActive)
  return out
}

// alertTimeLayouts are the accepted input shapes for alert_time. Values are
// normalized to UTC RFC3339 on write so lexical range comparisons stay
// chronological.
var alertTimeLayouts = []string{
  time.RFC3339,
  "2006-01-02T15:04:05",
  "2006-01-02 15:04:05",
}

func normalizeAlertTime(raw string) (string, error) {
  for _, layout := range alertTimeLayouts {
    if t, err := time.Parse(layout, raw); err == nil {
      return t.UTC().Format(time.RFC3339), nil
    }
  }
  return "", apierr.Validation("invalid_alert_time",
    fmt.Errorf("alert_time %q is not a recognized timestamp", raw))
}

type AlertRepo interface {
  Create(ctx context.Context, tx *gorm.DB, alert *types.Alert) (*types.Alert, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID int64, activeOnly bool, limit int) ([]*types.Alert, error)
  GetUpcoming(ctx context.Context, tx *gorm.DB, userID int64, hoursAhead int) ([]*types.Alert, error)
  Update(ctx context.Context, tx *gorm.DB, alertID, userID int64, patch *AlertPatch) (*types.Alert, error)
  Deactivate(ctx context.Context, tx *gorm.DB, alertID, userID int64) error
  Delete(ctx context.Context, tx *gorm.DB, alertID, userID int64) error
  ActiveCount(ctx context.Context, tx *gorm.DB, userID int64) (int64, error)
}

type alertRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAlertRepo(db *gorm.DB, baseLog *logger.Logger) AlertRepo {
  repoLog := baseLog.With("repo", "AlertRepo")
  return &alertRepo{db: db, log: repoLog}
}

func (r *alertRepo) Create(ctx context.Context, tx *gorm.DB, alert *types.Alert) (*types.Alert, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  normalized, err := normalizeAlertTime(alert.AlertTime)
  if err != nil {
    return nil, err
  }
  alert.AlertTime = normalized

  if err := transaction.WithContext(ctx).Create(alert).Error; err != nil {
    return nil, err
  }
  return alert, nil
}

func (r *alertRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID int64, activeOnly bool, limit int) ([]*types.Alert, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  q := transaction.WithContext(ctx).
    Where("user_id = ?", userID)
  if activeOnly {
    q = q.Where("is_active = ?", true)
  }
  q = q.Order("alert_time ASC")
  if limit > 0 {
    q = q.Limit(limit)
  }

  var results []*types.Alert
  if err := q.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *alertRepo) GetUpcoming(ctx context.Context, tx *gorm.DB, userID int64, hoursAhead int) ([]*types.Alert, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if hoursAhead <= 0 {
    hoursAhead = 24
  }
  now := time.Now().UTC()
  until := now.Add(time.Duration(hoursAhead) * time.Hour)

  var results []*types.Alert
  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND is_active = ? AND alert_time BETWEEN ? AND ?",
      userID, true, now.Format(time.RFC3339), until.Format(time.RFC3339)).
    Order("alert_time ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *alertRepo) Update(ctx context.Context, tx *gorm.DB, alertID, userID int64, patch *AlertPatch) (*types.Alert, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  columns := patch.columns()
  if len(columns) == 0 {
    return nil, apierr.Validation("empty_update", errors.New("no fields provided for update"))
  }
  if patch.AlertTime != nil {
    normalized, err := normalizeAlertTime(*patch.AlertTime)
    if err != nil {
      return nil, err
    }
    columns["alert_time"] = normalized
  }

  res := transaction.WithContext(ctx).
    Model(&types.Alert{}).
    Where("alert_id = ? AND user_id = ?", alertID, userID).
    Updates(columns)
  if res.Error != nil {
    return nil, res.Error
  }
  if res.RowsAffected == 0 {
    return nil, apierr.NotFound("alert_not_found", gorm.ErrRecordNotFound)
  }

  var alert types.Alert
  if err := transaction.WithContext(ctx).
    Where("alert_id = ?", alertID).
    First(&alert).Error; err != nil {
    return nil, err
  }
  return &alert, nil
}

func (r *alertRepo) Deactivate(ctx context.Context, tx *gorm.DB, alertID, userID int64) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  res := transaction.WithContext(ctx).
    Model(&types.Alert{}).
    Where("alert_id = ? AND user_id = ?", alertID, userID).
    Update("is_active", false)
  if res.Error != nil {
    return res.Error
  }
  if res.RowsAffected == 0 {
    return apierr.NotFound("alert_not_found", gorm.ErrRecordNotFound)
  }
  return nil
}

func (r *alertRepo) Delete(ctx context.Context, tx *gorm.DB, alertID, userID int64) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  res := transaction.WithContext(ctx).
    Where("alert_id = ? AND user_id = ?", alertID, userID).
    Delete(&types.Alert{})
  if res.Error != nil {
    return res.Error
  }
  if res.RowsAffected == 0 {
    return apierr.NotFound("alert_not_found", gorm.ErrRecordNotFound)
  }
  return nil
}

func (r *alertRepo) ActiveCount(ctx context.Context, tx *gorm.DB, userID int64) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Alert{}).
    Where("user_id = ? AND is_active = ?", userID, true).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}
