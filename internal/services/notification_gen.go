package services

import (
  "context"
  "fmt"
  "strings"

  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/repos"
  "github.com/caretrack/caretrack-backend/internal/types"
  "gorm.io/gorm"
)

// GeneratedNotification is the model-produced notification payload before it
// is persisted.
type GeneratedNotification struct {
  Title             string  `json:"title"`
  Message           string  `json:"message"`
  NotificationType  string  `json:"notification_type"`
}

// NotificationGenService produces personalized notification text from a
// user's stored health data. Generation never fails outward: parse and
// upstream errors degrade to canned fallback notifications.
type NotificationGenService interface {
  Generate(ctx context.Context, userID int64, notificationType, customContext string) *GeneratedNotification
  GenerateDaily(ctx context.Context, userID int64) *GeneratedNotification
  GenerateMultiple(ctx context.Context, userID int64, notificationTypes []string) []*GeneratedNotification
  GenerateAndSave(ctx context.Context, userID int64, notificationType, customContext string) (*types.Notification, error)
  GenerateDailyAndSave(ctx context.Context, userID int64) (*types.Notification, error)
  GenerateMultipleAndSave(ctx context.Context, userID int64, notificationTypes []string) ([]*types.Notification, error)
}

type notificationGenService struct {
  log              *logger.Logger
  db               *gorm.DB
  contextSvc       ContextService
  generator        GenerationClient
  rules            *NotificationRuleSet
  symptomRepo      repos.SymptomRepo
  medicationRepo   repos.MedicationRepo
  userRepo         repos.UserRepo
  notificationRepo repos.NotificationRepo
}

func NewNotificationGenService(
  baseLog *logger.Logger,
  db *gorm.DB,
  contextSvc ContextService,
  generator GenerationClient,
  rules *NotificationRuleSet,
  symptomRepo repos.SymptomRepo,
  medicationRepo repos.MedicationRepo,
  userRepo repos.UserRepo,
  notificationRepo repos.NotificationRepo,
) NotificationGenService {
  return &notificationGenService{
    log:              baseLog.With("service", "NotificationGenService"),
    db:               db,
    contextSvc:       contextSvc,
    generator:        generator,
    rules:            rules,
    symptomRepo:      symptomRepo,
    medicationRepo:   medicationRepo,
    userRepo:         userRepo,
    notificationRepo: notificationRepo,
  }
}

const notificationContextHeader = `
=== USER CONTEXT FOR PERSONALIZED NOTIFICATION ===
%s

=== RECENT ACTIVITY SUMMARY ===
This user has been actively tracking their health data. Based on their profile, recent symptoms, medications, and conditions, create a personalized, engaging notification.
`

// promptBodies holds the per-type instruction block. The surrounding frame
// (context above, JSON contract below) is shared.
var promptBodies = map[string]struct {
  persona  string
  asks     string
  titleAsk string
}{
  "medication": {
    persona: "You are a friendly, supportive AI Health Companion. Create a personalized medication reminder notification for this user.",
    asks: `Create a warm, encouraging medication reminder that:
- References their specific medications and conditions
- Uses their name and personal health context
- Is supportive and non-judgmental
- Includes a fun, motivational element
- Keeps it concise but personal (max 2 sentences)`,
    titleAsk: "A short, catchy title (max 50 characters)",
  },
  "wellness": {
    persona: "You are a friendly, supportive AI Health Companion. Create a personalized wellness check-in notification for this user.",
    asks: `Create a warm, caring wellness check-in that:
- References their recent health activity and symptoms
- Shows you remember their specific health conditions
- Encourages positive health behaviors
- Is uplifting and supportive
- Includes a personal touch based on their profile
- Keeps it concise but meaningful (max 2 sentences)`,
    titleAsk: "A short, encouraging title (max 50 characters)",
  },
  "symptom_followup": {
    persona: "You are a caring AI Health Companion. Create a personalized symptom follow-up notification for this user.",
    asks: `Create a thoughtful symptom follow-up that:
- References their recent symptoms specifically
- Shows concern and care for their wellbeing
- Suggests appropriate next steps or encouragement
- Is empathetic and supportive
- Acknowledges their health journey
- Keeps it caring but not alarming (max 2 sentences)`,
    titleAsk: "A caring, supportive title (max 50 characters)",
  },
  "checkup": {
    persona: "You are a proactive AI Health Companion. Create a personalized checkup reminder notification for this user.",
    asks: `Create a thoughtful checkup reminder that:
- References their specific health conditions and medications
- Emphasizes the importance based on their health profile
- Is encouraging and supportive
- Includes a personal touch
- Motivates them to prioritize their health
- Keeps it informative but friendly (max 2 sentences)`,
    titleAsk: "A clear, motivating title (max 50 characters)",
  },
  "general": {
    persona: "You are a friendly, supportive AI Health Companion. Create a personalized general health notification for this user.",
    asks: `Create a warm, engaging general notification that:
- References their health journey and recent activity
- Shows you understand their specific health context
- Encourages positive health behaviors
- Is uplifting and motivational
- Includes a personal, caring touch
- Keeps it positive and supportive (max 2 sentences)`,
    titleAsk: "A friendly, engaging title (max 50 characters)",
  },
}

func buildNotificationPrompt(notificationType, userContext, customContext string) string {
  body, ok := promptBodies[notificationType]
  if !ok {
    body = promptBodies["general"]
  }

  var b strings.Builder
  b.WriteString(body.persona)
  b.WriteString("\n")
  fmt.Fprintf(&b, notificationContextHeader, userContext)
  b.WriteString("\n")
  b.WriteString(body.asks)
  b.WriteString("\n\nReturn a JSON response with:\n")
  fmt.Fprintf(&b, "- \"title\": %s\n", body.titleAsk)
  b.WriteString("- \"message\": The personalized message (max 200 characters)\n")
  fmt.Fprintf(&b, "- \"notification_type\": %q\n", notificationType)
  b.WriteString("\nJSON Response:\n")

  if customContext != "" {
    fmt.Fprintf(&b, "\n\nAdditional Context: %s", customContext)
  }
  return b.String()
}

func (s *notificationGenService) Generate(ctx context.Context, userID int64, notificationType, customContext string) *GeneratedNotification {
  if notificationType == "" || !validNotificationTypes[notificationType] {
    notificationType = "general"
  }

  userContext, err := s.contextSvc.BuildContextBlock(ctx, userID)
  if err != nil {
    s.log.Error("Failed to build notification context", "user_id", userID, "error", err.Error())
    return fallbackNotification(notificationType)
  }

  prompt := buildNotificationPrompt(notificationType, userContext, customContext)

  obj, err := s.generator.GenerateJSON(ctx, prompt)
  if err != nil {
    s.log.Warn("Notification generation failed", "user_id", userID, "type", notificationType, "error", err.Error())
    return parseFailureNotification(notificationType)
  }

  title, _ := obj["title"].(string)
  message, _ := obj["message"].(string)
  if strings.TrimSpace(title) == "" || strings.TrimSpace(message) == "" {
    s.log.Warn("Notification generation returned incomplete payload", "user_id", userID, "type", notificationType)
    return parseFailureNotification(notificationType)
  }

  // The type echoed by the model is discarded; the requested type wins.
  return &GeneratedNotification{
    Title:            title,
    Message:          message,
    NotificationType: notificationType,
  }
}

func (s *notificationGenService) GenerateDaily(ctx context.Context, userID int64) *GeneratedNotification {
  notificationType, err := s.classifyDaily(ctx, userID)
  if err != nil {
    s.log.Error("Daily notification classification failed", "user_id", userID, "error", err.Error())
    return &GeneratedNotification{
      Title:            "Daily Health Check",
      Message:          "Hope you're having a healthy day! Remember to take care of yourself.",
      NotificationType: "general",
    }
  }
  return s.Generate(ctx, userID, notificationType, "")
}

func (s *notificationGenService) classifyDaily(ctx context.Context, userID int64) (string, error) {
  signals := map[string]bool{}

  symptoms, err := s.symptomRepo.GetRecent(ctx, nil, userID, contextSymptomDays, 1)
  if err != nil {
    return "", err
  }
  signals[SignalRecentSymptoms] = len(symptoms) > 0

  schedule, err := s.medicationRepo.GetRecentSchedule(ctx, nil, userID, contextMedDays, 1)
  if err != nil {
    return "", err
  }
  signals[SignalActiveMedications] = len(schedule) > 0

  user, err := s.userRepo.GetByID(ctx, nil, userID)
  if err != nil {
    return "", err
  }
  signals[SignalCheckupRecorded] = user.LastCheckup != nil && *user.LastCheckup != ""

  return s.rules.Classify(signals), nil
}

func (s *notificationGenService) GenerateMultiple(ctx context.Context, userID int64, notificationTypes []string) []*GeneratedNotification {
  if len(notificationTypes) == 0 {
    notificationTypes = []string{"wellness", "medication", "general"}
  }
  out := make([]*GeneratedNotification, 0, len(notificationTypes))
  for _, notificationType := range notificationTypes {
    out = append(out, s.Generate(ctx, userID, notificationType, ""))
  }
  return out
}

func (s *notificationGenService) GenerateAndSave(ctx context.Context, userID int64, notificationType, customContext string) (*types.Notification, error) {
  generated := s.Generate(ctx, userID, notificationType, customContext)
  return s.save(ctx, userID, generated)
}

func (s *notificationGenService) GenerateDailyAndSave(ctx context.Context, userID int64) (*types.Notification, error) {
  generated := s.GenerateDaily(ctx, userID)
  return s.save(ctx, userID, generated)
}

func (s *notificationGenService) GenerateMultipleAndSave(ctx context.Context, userID int64, notificationTypes []string) ([]*types.Notification, error) {
  generatedList := s.GenerateMultiple(ctx, userID, notificationTypes)
  saved := make([]*types.Notification, 0, len(generatedList))
  for _, generated := range generatedList {
    notification, err := s.save(ctx, userID, generated)
    if err != nil {
      return nil, err
    }
    saved = append(saved, notification)
  }
  return saved, nil
}

func (s *notificationGenService) save(ctx context.Context, userID int64, generated *GeneratedNotification) (*types.Notification, error) {
  notificationType := generated.NotificationType
  notification := &types.Notification{
    UserID:  userID,
    Title:   generated.Title,
    Message: generated.Message,
    Type:    &notificationType,
  }

  var saved *types.Notification
  err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var err error
    saved, err = s.notificationRepo.Create(ctx, tx, notification)
    return err
  })
  if err != nil {
    return nil, err
  }
  return saved, nil
}

func parseFailureNotification(notificationType string) *GeneratedNotification {
  return &GeneratedNotification{
    Title:            "Health Check-in",
    Message:          "Hi! Just checking in on your health journey. Keep up the great work!",
    NotificationType: notificationType,
  }
}

func fallbackNotification(notificationType string) *GeneratedNotification {
  return &GeneratedNotification{
    Title:            "Health Reminder",
    Message:          "Don't forget to take care of your health today!",
    NotificationType: notificationType,
  }
}
