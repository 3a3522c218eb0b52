package services

import (
  "context"
  "fmt"
  "strings"
  "time"

  "github.com/caretrack/caretrack-backend/internal/clients/redis"
  "github.com/caretrack/caretrack-backend/internal/logger"
)

// NoConversationMessage is returned when there is nothing to summarize for
// the day, including a second run after the transcript was already replaced.
const NoConversationMessage = "No conversation to summarize."

// SummarizerService condenses a day's chat transcript into one paragraph and
// replaces the stored transcript with it.
type SummarizerService interface {
  SummarizeDay(ctx context.Context, userID int64) (string, error)
}

type summarizerService struct {
  log       *logger.Logger
  store     redis.ChatStore
  generator GenerationClient
}

func NewSummarizerService(baseLog *logger.Logger, store redis.ChatStore, generator GenerationClient) SummarizerService {
  return &summarizerService{
    log:       baseLog.With("service", "SummarizerService"),
    store:     store,
    generator: generator,
  }
}

func (s *summarizerService) SummarizeDay(ctx context.Context, userID int64) (string, error) {
  today := time.Now().UTC().Format("2006-01-02")

  conversation, err := s.store.GetFullConversation(ctx, userID, today)
  if err != nil {
    return "", err
  }
  if len(conversation) == 0 {
    s.log.Info("No conversation to summarize", "user_id", userID, "date", today)
    return NoConversationMessage, nil
  }

  var script strings.Builder
  for _, msg := range conversation {
    role := "Assistant"
    if msg.Sender == "user" {
      role = "User"
    }
    fmt.Fprintf(&script, "%s: %s\n", role, msg.Message)
  }

  prompt := fmt.Sprintf(`You are a medical data analyst. Your task is to read the following conversation script between a user and an AI Health Companion and create a concise summary.

The summary should be a single paragraph and must include:
- The main health symptoms or concerns mentioned by the user.
- Any activities or lifestyle choices discussed (e.g., exercise, diet).
- The overall mood or sentiment of the user if discernible.

Conversation Script:
---
%s---

Concise Summary:
`, script.String())

  summary, err := s.generator.GenerateText(ctx, prompt)
  if err != nil {
    return "", err
  }
  summary = strings.TrimSpace(summary)

  if err := s.store.SaveSummary(ctx, userID, today, summary); err != nil {
    return "", err
  }

  s.log.Info("Saved daily summary", "user_id", userID, "date", today)
  return summary, nil
}
