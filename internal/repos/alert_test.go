package repos

import (
  "context"
  "testing"
  "time"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "github.com/caretrack/caretrack-backend/internal/apierr"
  "github.com/caretrack/caretrack-backend/internal/types"
)

func seedAlert(t *testing.T, repo AlertRepo, userID int64, title string, alertTime time.Time) *types.Alert {
  t.Helper()
  created, err := repo.Create(context.Background(), nil, &types.Alert{
    UserID:    userID,
    Type:      "reminder",
    Title:     title,
    Message:   "message for " + title,
    AlertTime: alertTime.Format(time.RFC3339),
    IsActive:  true,
  })
  require.NoError(t, err)
  return created
}

func TestAlertRepoGetUpcomingWindow(t *testing.T) {
  db := newTestDB(t)
  repo := NewAlertRepo(db, newTestLogger(t))
  ctx := context.Background()

  user := seedUser(t, db, "Judy")
  now := time.Now().UTC()
  soon := seedAlert(t, repo, user.ID, "soon", now.Add(2*time.Hour))
  seedAlert(t, repo, user.ID, "far", now.Add(72*time.Hour))
  seedAlert(t, repo, user.ID, "past", now.Add(-2*time.Hour))

  upcoming, err := repo.GetUpcoming(ctx, nil, user.ID, 24)
  require.NoError(t, err)
  require.Len(t, upcoming, 1)
  assert.Equal(t, soon.ID, upcoming[0].ID)
}

func TestAlertRepoCreateNormalizesAlertTime(t *testing.T) {
  db := newTestDB(t)
  repo := NewAlertRepo(db, newTestLogger(t))
  ctx := context.Background()

  user := seedUser(t, db, "Ivy")
  legacyTime := time.Now().UTC().Add(2 * time.Hour)

  created, err := repo.Create(ctx, nil, &types.Alert{
    UserID:    user.ID,
    Type:      "reminder",
    Title:     "legacy format",
    Message:   "stored with a space-separated timestamp",
    AlertTime: legacyTime.Format("2006-01-02 15:04:05"),
    IsActive:  true,
  })
  require.NoError(t, err)
  assert.Equal(t, legacyTime.Truncate(time.Second).Format(time.RFC3339), created.AlertTime)

  upcoming, err := repo.GetUpcoming(ctx, nil, user.ID, 24)
  require.NoError(t, err)
  require.Len(t, upcoming, 1)
  assert.Equal(t, created.ID, upcoming[0].ID)
}

func TestAlertRepoCreateRejectsUnparsableAlertTime(t *testing.T) {
  db := newTestDB(t)
  repo := NewAlertRepo(db, newTestLogger(t))

  user := seedUser(t, db, "Hal")
  _, err := repo.Create(context.Background(), nil, &types.Alert{
    UserID:    user.ID,
    Type:      "reminder",
    Title:     "bad time",
    Message:   "m",
    AlertTime: "next tuesday",
    IsActive:  true,
  })
  require.Error(t, err)
  assert.True(t, apierr.IsValidation(err))
}

func TestAlertRepoUpdateNormalizesAlertTime(t *testing.T) {
  db := newTestDB(t)
  repo := NewAlertRepo(db, newTestLogger(t))
  ctx := context.Background()

  user := seedUser(t, db, "Gus")
  alert := seedAlert(t, repo, user.ID, "movable", time.Now().UTC().Add(time.Hour))

  newTime := time.Now().UTC().Add(3 * time.Hour)
  raw := newTime.Format("2006-01-02 15:04:05")
  updated, err := repo.Update(ctx, nil, alert.ID, user.ID, &AlertPatch{AlertTime: &raw})
  require.NoError(t, err)
  assert.Equal(t, newTime.Truncate(time.Second).Format(time.RFC3339), updated.AlertTime)

  bad := "noon-ish"
  _, err = repo.Update(ctx, nil, alert.ID, user.ID, &AlertPatch{AlertTime: &bad})
  require.Error(t, err)
  assert.True(t, apierr.IsValidation(err))
}

func TestAlertRepoUpdateScopedToOwner(t *testing.T) {
  db := newTestDB(t)
  repo := NewAlertRepo(db, newTestLogger(t))
  ctx := context.Background()

  owner := seedUser(t, db, "Ken")
  other := seedUser(t, db, "Leo")
  alert := seedAlert(t, repo, owner.ID, "original", time.Now().UTC().Add(time.Hour))

  title := "hijacked"
  _, err := repo.Update(ctx, nil, alert.ID, other.ID, &AlertPatch{Title: &title})
  require.Error(t, err)
  assert.True(t, apierr.IsNotFound(err))

  title = "renamed"
  updated, err := repo.Update(ctx, nil, alert.ID, owner.ID, &AlertPatch{Title: &title})
  require.NoError(t, err)
  assert.Equal(t, "renamed", updated.Title)
}

func TestAlertRepoUpdateEmptyPatch(t *testing.T) {
  db := newTestDB(t)
  repo := NewAlertRepo(db, newTestLogger(t))

  user := seedUser(t, db, "Mia")
  alert := seedAlert(t, repo, user.ID, "stale", time.Now().UTC().Add(time.Hour))

  _, err := repo.Update(context.Background(), nil, alert.ID, user.ID, &AlertPatch{})
  require.Error(t, err)
  assert.True(t, apierr.IsValidation(err))
}

func TestAlertRepoDeactivateAndActiveCount(t *testing.T) {
  db := newTestDB(t)
  repo := NewAlertRepo(db, newTestLogger(t))
  ctx := context.Background()

  user := seedUser(t, db, "Nina")
  first := seedAlert(t, repo, user.ID, "first", time.Now().UTC().Add(time.Hour))
  seedAlert(t, repo, user.ID, "second", time.Now().UTC().Add(2*time.Hour))

  count, err := repo.ActiveCount(ctx, nil, user.ID)
  require.NoError(t, err)
  assert.Equal(t, int64(2), count)

  require.NoError(t, repo.Deactivate(ctx, nil, first.ID, user.ID))

  count, err = repo.ActiveCount(ctx, nil, user.ID)
  require.NoError(t, err)
  assert.Equal(t, int64(1), count)

  active, err := repo.GetByUserID(ctx, nil, user.ID, true, 0)
  require.NoError(t, err)
  require.Len(t, active, 1)
  assert.Equal(t, "second", active[0].Title)
}
