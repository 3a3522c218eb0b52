package services

import (
  "context"
  "net/http"
  "net/http/httptest"
  "testing"
  "time"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
  "gorm.io/gorm"

  "github.com/caretrack/caretrack-backend/internal/apierr"
  "github.com/caretrack/caretrack-backend/internal/types"
)

type fakeTokenRepo struct {
  latest  *types.UserToken
  err     error
}

func (r *fakeTokenRepo) Create(_ context.Context, _ *gorm.DB, token *types.UserToken) (*types.UserToken, error) {
  return token, nil
}

func (r *fakeTokenRepo) GetByUserID(context.Context, *gorm.DB, int64) ([]*types.UserToken, error) {
  if r.latest == nil {
    return nil, nil
  }
  return []*types.UserToken{r.latest}, nil
}

func (r *fakeTokenRepo) GetLatestByUserID(context.Context, *gorm.DB, int64) (*types.UserToken, error) {
  return r.latest, r.err
}

func newTokenServiceForTest(t *testing.T, repo *fakeTokenRepo, revokeURL string) *tokenService {
  t.Helper()
  return &tokenService{
    log:        newTestLogger(t),
    tokenRepo:  repo,
    revokeURL:  revokeURL,
    httpClient: &http.Client{Timeout: 5 * time.Second},
  }
}

func TestRevokePostsLatestToken(t *testing.T) {
  var gotToken, gotContentType string
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    require.NoError(t, r.ParseForm())
    gotToken = r.PostFormValue("token")
    gotContentType = r.Header.Get("Content-Type")
    w.WriteHeader(http.StatusOK)
  }))
  defer srv.Close()

  repo := &fakeTokenRepo{latest: &types.UserToken{UserID: 1, AccessToken: "ya29.secret"}}
  svc := newTokenServiceForTest(t, repo, srv.URL)

  err := svc.Revoke(context.Background(), 1)
  require.NoError(t, err)
  assert.Equal(t, "ya29.secret", gotToken)
  assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
}

func TestRevokeNoStoredToken(t *testing.T) {
  svc := newTokenServiceForTest(t, &fakeTokenRepo{}, "http://unused.invalid")

  err := svc.Revoke(context.Background(), 1)
  require.Error(t, err)
  assert.True(t, apierr.IsNotFound(err))
}

func TestRevokeRejectedUpstream(t *testing.T) {
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    w.WriteHeader(http.StatusBadRequest)
    _, _ = w.Write([]byte(`{"error": "invalid_token"}`))
  }))
  defer srv.Close()

  repo := &fakeTokenRepo{latest: &types.UserToken{UserID: 1, AccessToken: "expired"}}
  svc := newTokenServiceForTest(t, repo, srv.URL)

  err := svc.Revoke(context.Background(), 1)
  require.Error(t, err)
  assert.True(t, apierr.IsValidation(err))
}

func TestRevokeNetworkFailure(t *testing.T) {
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
  srv.Close()

  repo := &fakeTokenRepo{latest: &types.UserToken{UserID: 1, AccessToken: "tok"}}
  svc := newTokenServiceForTest(t, repo, srv.URL)

  err := svc.Revoke(context.Background(), 1)
  require.Error(t, err)
  assert.True(t, apierr.IsUpstream(err))
}
