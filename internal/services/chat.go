package services

import (
  "context"
  "fmt"
  "strings"
  "time"

  "github.com/google/uuid"

  "github.com/caretrack/caretrack-backend/internal/clients/redis"
  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/repos"
  "github.com/caretrack/caretrack-backend/internal/types"
)

const (
  chatHistoryLimit = 10
  chatSummaryDays  = 7

  chatFallbackReply = "I'm sorry, I encountered an issue. Could you please rephrase?"
)

// ChatResult is what one conversational turn produces.
type ChatResult struct {
  Response  string    `json:"response"`
  Symptoms  []string  `json:"symptoms"`
}

// ChatService runs one conversational turn: it persists the user message,
// assembles context, calls the generation API, persists the reply, and logs
// any symptoms the model extracted from the user's message.
type ChatService interface {
  HandleConversation(ctx context.Context, userID int64, userMessage string) (*ChatResult, error)
}

type chatService struct {
  log         *logger.Logger
  store       redis.ChatStore
  contextSvc  ContextService
  generator   GenerationClient
  symptomRepo repos.SymptomRepo
}

func NewChatService(
  baseLog *logger.Logger,
  store redis.ChatStore,
  contextSvc ContextService,
  generator GenerationClient,
  symptomRepo repos.SymptomRepo,
) ChatService {
  return &chatService{
    log:         baseLog.With("service", "ChatService"),
    store:       store,
    contextSvc:  contextSvc,
    generator:   generator,
    symptomRepo: symptomRepo,
  }
}

func (s *chatService) HandleConversation(ctx context.Context, userID int64, userMessage string) (*ChatResult, error) {
  userMsg := types.ChatMessage{
    ID:        uuid.NewString(),
    Sender:    "user",
    Message:   userMessage,
    Timestamp: time.Now().UTC(),
  }
  if err := s.store.AppendMessage(ctx, userID, userMsg); err != nil {
    return nil, err
  }

  contextBlock, err := s.contextSvc.BuildContextBlock(ctx, userID)
  if err != nil {
    return nil, err
  }

  history, err := s.store.GetTodaysHistory(ctx, userID, chatHistoryLimit)
  if err != nil {
    return nil, err
  }
  summaries, err := s.store.GetPastSummaries(ctx, userID, chatSummaryDays)
  if err != nil {
    return nil, err
  }

  prompt := buildConversationPrompt(contextBlock, summaries, history, userMessage)

  result := s.generate(ctx, prompt)

  aiMsg := types.ChatMessage{
    ID:        uuid.NewString(),
    Sender:    "ai",
    Message:   result.Response,
    Timestamp: time.Now().UTC(),
  }
  if err := s.store.AppendMessage(ctx, userID, aiMsg); err != nil {
    return nil, err
  }

  for _, symptomText := range result.Symptoms {
    symptomText = strings.TrimSpace(symptomText)
    if symptomText == "" {
      continue
    }
    _, err := s.symptomRepo.Create(ctx, nil, &types.Symptom{
      UserID:  userID,
      Symptom: symptomText,
    })
    if err != nil {
      s.log.Error("Failed to log extracted symptom",
        "user_id", userID, "symptom", symptomText, "error", err.Error())
    }
  }

  return result, nil
}

// generate never returns an error: a failed or unparseable generation turn
// degrades to a canned apology so the conversation stays alive.
func (s *chatService) generate(ctx context.Context, prompt string) *ChatResult {
  obj, err := s.generator.GenerateJSON(ctx, prompt)
  if err != nil {
    s.log.Warn("Generation failed for conversation turn", "error", err.Error())
    return &ChatResult{Response: chatFallbackReply, Symptoms: []string{}}
  }

  response, _ := obj["response"].(string)
  if strings.TrimSpace(response) == "" {
    response = "I'm sorry, I'm having trouble responding."
  }

  symptoms := []string{}
  if raw, ok := obj["symptoms"].([]any); ok {
    for _, item := range raw {
      if text, ok := item.(string); ok {
        symptoms = append(symptoms, text)
      }
    }
  }

  return &ChatResult{Response: response, Symptoms: symptoms}
}

func buildConversationPrompt(contextBlock string, summaries []types.DailySummary, history []types.ChatMessage, userMessage string) string {
  var b strings.Builder

  b.WriteString(`You are an AI Health Companion. Your role is to be a supportive and helpful conversational partner.
You have access to COMPREHENSIVE user health data including:
1. Complete Health Profile: All physical metrics, medical conditions, medications, disorders, lab values
2. Recent Symptoms: Last 30 days of symptom logs with severity and duration
3. Previous Day Summaries: Concise summaries of past conversations for long-term memory
4. Today's Conversation: The most recent messages from today

Use ALL this information to have a deeply context-aware conversation. You can reference:
- Specific health metrics (BMI, blood pressure, heart rate, etc.)
- Medical conditions and allergies
- Current medications and their schedules
- Recent symptoms and their patterns
- Lab values and health indicators
- Previous conversation summaries for continuity

Your secondary task is to silently identify and extract any medical symptoms the user mentions in their message.
`)

  b.WriteString("\n")
  b.WriteString(contextBlock)
  b.WriteString("\n")
  b.WriteString(formatSummariesForPrompt(summaries))
  b.WriteString(formatHistoryForPrompt(history))

  fmt.Fprintf(&b, "\nCurrent User Message: %q\n", userMessage)

  b.WriteString(`
Based on all information, provide a JSON response with two keys:
1. "response": Your natural, empathetic, and helpful conversational response that references relevant health data when appropriate.
2. "symptoms": A list of any medical symptoms from the *current user message only*. If none, provide an empty list.

JSON Response:
`)

  return b.String()
}

func formatHistoryForPrompt(history []types.ChatMessage) string {
  if len(history) == 0 {
    return ""
  }
  var b strings.Builder
  b.WriteString("\n--- Today's Conversation (Most Recent) ---\n")
  for _, msg := range history {
    role := "Health Companion"
    if msg.Sender == "user" {
      role = "User"
    }
    fmt.Fprintf(&b, "%s: %s\n", role, msg.Message)
  }
  return b.String()
}

func formatSummariesForPrompt(summaries []types.DailySummary) string {
  if len(summaries) == 0 {
    return ""
  }
  var b strings.Builder
  b.WriteString("\n--- Previous Day Summaries (Most Recent First) ---\n")
  for _, entry := range summaries {
    fmt.Fprintf(&b, "Date: %s\nSummary: %s\n\n", entry.Date, entry.Summary)
  }
  return b.String()
}
