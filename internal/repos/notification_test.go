package repos

import (
  "context"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "github.com/caretrack/caretrack-backend/internal/apierr"
  "github.com/caretrack/caretrack-backend/internal/types"
)

func seedNotification(t *testing.T, repo NotificationRepo, userID int64, title string) *types.Notification {
  t.Helper()
  created, err := repo.Create(context.Background(), nil, &types.Notification{
    UserID:  userID,
    Title:   title,
    Message: "message for " + title,
  })
  require.NoError(t, err)
  return created
}

func TestNotificationRepoMarkReadScopedToOwner(t *testing.T) {
  db := newTestDB(t)
  repo := NewNotificationRepo(db, newTestLogger(t))
  ctx := context.Background()

  owner := seedUser(t, db, "Owner")
  other := seedUser(t, db, "Other")
  notification := seedNotification(t, repo, owner.ID, "water reminder")

  err := repo.MarkRead(ctx, nil, notification.ID, other.ID)
  require.Error(t, err)
  assert.True(t, apierr.IsNotFound(err))

  require.NoError(t, repo.MarkRead(ctx, nil, notification.ID, owner.ID))

  remaining, err := repo.UnreadCount(ctx, nil, owner.ID)
  require.NoError(t, err)
  assert.Equal(t, int64(0), remaining)
}

func TestNotificationRepoMarkAllRead(t *testing.T) {
  db := newTestDB(t)
  repo := NewNotificationRepo(db, newTestLogger(t))
  ctx := context.Background()

  user := seedUser(t, db, "Frank")
  seedNotification(t, repo, user.ID, "first")
  seedNotification(t, repo, user.ID, "second")
  seedNotification(t, repo, user.ID, "third")

  updated, err := repo.MarkAllRead(ctx, nil, user.ID)
  require.NoError(t, err)
  assert.Equal(t, int64(3), updated)

  // Second run is a no-op.
  updated, err = repo.MarkAllRead(ctx, nil, user.ID)
  require.NoError(t, err)
  assert.Equal(t, int64(0), updated)
}

func TestNotificationRepoUnreadFilter(t *testing.T) {
  db := newTestDB(t)
  repo := NewNotificationRepo(db, newTestLogger(t))
  ctx := context.Background()

  user := seedUser(t, db, "Grace")
  first := seedNotification(t, repo, user.ID, "first")
  seedNotification(t, repo, user.ID, "second")

  require.NoError(t, repo.MarkRead(ctx, nil, first.ID, user.ID))

  unread, err := repo.GetByUserID(ctx, nil, user.ID, true, 0)
  require.NoError(t, err)
  require.Len(t, unread, 1)
  assert.Equal(t, "second", unread[0].Title)

  all, err := repo.GetByUserID(ctx, nil, user.ID, false, 0)
  require.NoError(t, err)
  assert.Len(t, all, 2)
}

func TestNotificationRepoDeleteScopedToOwner(t *testing.T) {
  db := newTestDB(t)
  repo := NewNotificationRepo(db, newTestLogger(t))
  ctx := context.Background()

  owner := seedUser(t, db, "Heidi")
  other := seedUser(t, db, "Ivan")
  notification := seedNotification(t, repo, owner.ID, "doomed")

  err := repo.Delete(ctx, nil, notification.ID, other.ID)
  require.Error(t, err)
  assert.True(t, apierr.IsNotFound(err))

  require.NoError(t, repo.Delete(ctx, nil, notification.ID, owner.ID))

  all, err := repo.GetByUserID(ctx, nil, owner.ID, false, 0)
  require.NoError(t, err)
  assert.Empty(t, all)
}
