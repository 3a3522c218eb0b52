package services

import (
  "context"
  "fmt"
  "io"
  "net/http"
  "net/url"
  "os"
  "strings"
  "time"

  "gorm.io/gorm"

  "github.com/caretrack/caretrack-backend/internal/apierr"
  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/repos"
  "github.com/caretrack/caretrack-backend/internal/types"
)

const defaultRevokeURL = "https://oauth2.googleapis.com/revoke"

// TokenService stores OAuth tokens handed back by the fitness-data callback
// flow and revokes them upstream on request.
type TokenService interface {
  Save(ctx context.Context, token *types.UserToken) (*types.UserToken, error)
  GetForUser(ctx context.Context, userID int64) ([]*types.UserToken, error)
  Revoke(ctx context.Context, userID int64) error
}

type tokenService struct {
  db         *gorm.DB
  log        *logger.Logger
  tokenRepo  repos.UserTokenRepo
  revokeURL  string
  httpClient *http.Client
}

func NewTokenService(db *gorm.DB, baseLog *logger.Logger, tokenRepo repos.UserTokenRepo) TokenService {
  revokeURL := os.Getenv("TOKEN_REVOKE_URL")
  if revokeURL == "" {
    revokeURL = defaultRevokeURL
  }
  return &tokenService{
    db:         db,
    log:        baseLog.With("service", "TokenService"),
    tokenRepo:  tokenRepo,
    revokeURL:  revokeURL,
    httpClient: &http.Client{Timeout: 15 * time.Second},
  }
}

func (s *tokenService) Save(ctx context.Context, token *types.UserToken) (*types.UserToken, error) {
  var created *types.UserToken
  err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var err error
    created, err = s.tokenRepo.Create(ctx, tx, token)
    return err
  })
  if err != nil {
    return nil, err
  }
  return created, nil
}

func (s *tokenService) GetForUser(ctx context.Context, userID int64) ([]*types.UserToken, error) {
  return s.tokenRepo.GetByUserID(ctx, nil, userID)
}

// Revoke posts the user's most recent access token to the provider's revoke
// endpoint. A non-200 reply surfaces as a validation error, matching the
// provider's own semantics for already-expired tokens.
func (s *tokenService) Revoke(ctx context.Context, userID int64) error {
  token, err := s.tokenRepo.GetLatestByUserID(ctx, nil, userID)
  if err != nil {
    return err
  }
  if token == nil {
    return apierr.NotFound("token_not_found", fmt.Errorf("no stored token for user %d", userID))
  }

  form := url.Values{"token": {token.AccessToken}}
  req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.revokeURL, strings.NewReader(form.Encode()))
  if err != nil {
    return apierr.Internal("revoke_request_build", err)
  }
  req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

  resp, err := s.httpClient.Do(req)
  if err != nil {
    return apierr.Upstream("revoke_request_failed", err)
  }
  defer resp.Body.Close()

  if resp.StatusCode != http.StatusOK {
    body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
    s.log.Warn("Token revocation rejected",
      "user_id", userID, "status", resp.StatusCode, "body", string(body))
    return apierr.Validation("revoke_rejected",
      fmt.Errorf("revoke endpoint returned status %d", resp.StatusCode))
  }

  s.log.Info("Token revoked", "user_id", userID)
  return nil
}
