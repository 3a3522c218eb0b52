package repos

import (
  "context"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "github.com/caretrack/caretrack-backend/internal/apierr"
  "github.com/caretrack/caretrack-backend/internal/types"
)

func TestUserRepoCreateAssignsIncreasingIDs(t *testing.T) {
  db := newTestDB(t)
  repo := NewUserRepo(db, newTestLogger(t))
  ctx := context.Background()

  var lastID int64
  for _, name := range []string{"Alice", "Bob", "Carol"} {
    user, err := repo.Create(ctx, nil, &types.User{Name: name})
    require.NoError(t, err)
    assert.Greater(t, user.ID, lastID)
    lastID = user.ID
  }
}

func TestUserRepoGetByIDNotFound(t *testing.T) {
  db := newTestDB(t)
  repo := NewUserRepo(db, newTestLogger(t))

  _, err := repo.GetByID(context.Background(), nil, 9999)
  require.Error(t, err)
  assert.True(t, apierr.IsNotFound(err))
}

func TestUserRepoUpdateProfile(t *testing.T) {
  db := newTestDB(t)
  repo := NewUserRepo(db, newTestLogger(t))
  ctx := context.Background()

  user, err := repo.Create(ctx, nil, &types.User{Name: "Dave"})
  require.NoError(t, err)

  age := 42
  smoker := false
  updated, err := repo.UpdateProfile(ctx, nil, user.ID, &UserProfilePatch{
    Age:    &age,
    Smoker: &smoker,
  })
  require.NoError(t, err)
  require.NotNil(t, updated.Age)
  assert.Equal(t, 42, *updated.Age)
  require.NotNil(t, updated.Smoker)
  assert.False(t, *updated.Smoker)
  assert.Equal(t, "Dave", updated.Name)
}

func TestUserRepoUpdateProfileEmptyPatch(t *testing.T) {
  db := newTestDB(t)
  repo := NewUserRepo(db, newTestLogger(t))
  ctx := context.Background()

  user, err := repo.Create(ctx, nil, &types.User{Name: "Erin"})
  require.NoError(t, err)

  _, err = repo.UpdateProfile(ctx, nil, user.ID, &UserProfilePatch{})
  require.Error(t, err)
  assert.True(t, apierr.IsValidation(err))
}

func TestUserRepoUpdateProfileMissingUser(t *testing.T) {
  db := newTestDB(t)
  repo := NewUserRepo(db, newTestLogger(t))

  age := 30
  _, err := repo.UpdateProfile(context.Background(), nil, 12345, &UserProfilePatch{Age: &age})
  require.Error(t, err)
  assert.True(t, apierr.IsNotFound(err))
}
