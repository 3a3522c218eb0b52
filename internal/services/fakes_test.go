package services

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "testing"
  "time"

  "gorm.io/gorm"

  "github.com/caretrack/caretrack-backend/internal/apierr"
  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/repos"
  "github.com/caretrack/caretrack-backend/internal/types"
)

func newTestLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("failed to init logger: %v", err)
  }
  return log
}

// assertErr is a throwaway error with a fixed message.
type assertErr string

func (e assertErr) Error() string { return string(e) }

// fakeChatStore keeps per-day documents in memory, mirroring the key scheme
// of the real store.
type fakeChatStore struct {
  conversations  map[string][]types.ChatMessage
  summaries      map[string]string
  appendErr      error
}

func newFakeChatStore() *fakeChatStore {
  return &fakeChatStore{
    conversations: map[string][]types.ChatMessage{},
    summaries:     map[string]string{},
  }
}

func (s *fakeChatStore) key(userID int64, date string) string {
  return fmt.Sprintf("user:%d:daily:%s", userID, date)
}

func (s *fakeChatStore) todayKey(userID int64) string {
  return s.key(userID, time.Now().UTC().Format("2006-01-02"))
}

func (s *fakeChatStore) AppendMessage(_ context.Context, userID int64, msg types.ChatMessage) error {
  if s.appendErr != nil {
    return s.appendErr
  }
  k := s.todayKey(userID)
  s.conversations[k] = append(s.conversations[k], msg)
  return nil
}

func (s *fakeChatStore) GetTodaysHistory(_ context.Context, userID int64, limit int) ([]types.ChatMessage, error) {
  conv := s.conversations[s.todayKey(userID)]
  if limit > 0 && len(conv) > limit {
    conv = conv[len(conv)-limit:]
  }
  return conv, nil
}

func (s *fakeChatStore) GetFullConversation(_ context.Context, userID int64, date string) ([]types.ChatMessage, error) {
  return s.conversations[s.key(userID, date)], nil
}

func (s *fakeChatStore) SaveSummary(_ context.Context, userID int64, date string, summary string) error {
  k := s.key(userID, date)
  delete(s.conversations, k)
  s.summaries[k] = summary
  return nil
}

func (s *fakeChatStore) GetPastSummaries(_ context.Context, userID int64, days int) ([]types.DailySummary, error) {
  var out []types.DailySummary
  for i := 1; i <= days; i++ {
    date := time.Now().UTC().AddDate(0, 0, -i).Format("2006-01-02")
    if summary, ok := s.summaries[s.key(userID, date)]; ok {
      out = append(out, types.DailySummary{Date: date, Summary: summary})
    }
  }
  return out, nil
}

func (s *fakeChatStore) Close() error { return nil }

// fakeGenerator returns queued replies in order, or a fixed error.
type fakeGenerator struct {
  replies  []string
  err      error
  prompts  []string
}

func (g *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
  g.prompts = append(g.prompts, prompt)
  if g.err != nil {
    return "", g.err
  }
  if len(g.replies) == 0 {
    return "", errors.New("no queued reply")
  }
  reply := g.replies[0]
  g.replies = g.replies[1:]
  return reply, nil
}

func (g *fakeGenerator) GenerateJSON(ctx context.Context, prompt string) (map[string]any, error) {
  text, err := g.GenerateText(ctx, prompt)
  if err != nil {
    return nil, err
  }
  var obj map[string]any
  if err := json.Unmarshal([]byte(stripJSONFences(text)), &obj); err != nil {
    return nil, err
  }
  return obj, nil
}

// fakeContextService returns a fixed block.
type fakeContextService struct {
  block  string
  err    error
}

func (s *fakeContextService) BuildContextBlock(context.Context, int64) (string, error) {
  return s.block, s.err
}

// fakeSymptomRepo records created symptoms.
type fakeSymptomRepo struct {
  created  []*types.Symptom
  recent   []*types.Symptom
}

func (r *fakeSymptomRepo) Create(_ context.Context, _ *gorm.DB, symptom *types.Symptom) (*types.Symptom, error) {
  symptom.ID = int64(len(r.created) + 1)
  r.created = append(r.created, symptom)
  return symptom, nil
}

func (r *fakeSymptomRepo) GetByUserID(context.Context, *gorm.DB, int64, int) ([]*types.Symptom, error) {
  return r.created, nil
}

func (r *fakeSymptomRepo) GetRecent(context.Context, *gorm.DB, int64, int, int) ([]*types.Symptom, error) {
  return r.recent, nil
}

// fakeMedicationRepo only supports the recent-schedule read used by the
// daily classifier.
type fakeMedicationRepo struct {
  recent  []*types.MedicationScheduleDetail
}

func (r *fakeMedicationRepo) CreateMedication(context.Context, *gorm.DB, *types.Medication) (*types.Medication, error) {
  return nil, errors.New("not implemented")
}

func (r *fakeMedicationRepo) GetAllMedications(context.Context, *gorm.DB) ([]*types.Medication, error) {
  return nil, errors.New("not implemented")
}

func (r *fakeMedicationRepo) AssignToUser(context.Context, *gorm.DB, *types.UserMedication) (*types.UserMedication, error) {
  return nil, errors.New("not implemented")
}

func (r *fakeMedicationRepo) GetUserMedications(context.Context, *gorm.DB, int64) ([]*types.UserMedicationDetail, error) {
  return nil, errors.New("not implemented")
}

func (r *fakeMedicationRepo) CreateScheduleEntry(context.Context, *gorm.DB, *types.MedicationSchedule) (*types.MedicationSchedule, error) {
  return nil, errors.New("not implemented")
}

func (r *fakeMedicationRepo) GetScheduleByUser(context.Context, *gorm.DB, int64, string) ([]*types.MedicationScheduleDetail, error) {
  return nil, errors.New("not implemented")
}

func (r *fakeMedicationRepo) GetRecentSchedule(context.Context, *gorm.DB, int64, int, int) ([]*types.MedicationScheduleDetail, error) {
  return r.recent, nil
}

// fakeUserRepo serves a single user.
type fakeUserRepo struct {
  user  *types.User
}

func (r *fakeUserRepo) Create(_ context.Context, _ *gorm.DB, user *types.User) (*types.User, error) {
  user.ID = 1
  r.user = user
  return user, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, _ *gorm.DB, userID int64) (*types.User, error) {
  if r.user == nil || r.user.ID != userID {
    return nil, apierr.NotFound("user_not_found", gorm.ErrRecordNotFound)
  }
  return r.user, nil
}

func (r *fakeUserRepo) GetAll(context.Context, *gorm.DB) ([]*types.User, error) {
  if r.user == nil {
    return nil, nil
  }
  return []*types.User{r.user}, nil
}

func (r *fakeUserRepo) UpdateProfile(context.Context, *gorm.DB, int64, *repos.UserProfilePatch) (*types.User, error) {
  return nil, errors.New("not implemented")
}
