package services

import (
  "context"
  "strings"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestChatServiceHandleConversation(t *testing.T) {
  store := newFakeChatStore()
  generator := &fakeGenerator{replies: []string{
    "```json\n{\"response\": \"Sorry about the headache. Rest up!\", \"symptoms\": [\"headache\", \"light sensitivity\"]}\n```",
  }}
  symptomRepo := &fakeSymptomRepo{}
  contextSvc := &fakeContextService{block: "=== COMPREHENSIVE USER HEALTH PROFILE ==="}

  svc := NewChatService(newTestLogger(t), store, contextSvc, generator, symptomRepo)

  result, err := svc.HandleConversation(context.Background(), 7, "I have a headache and bright light hurts")
  require.NoError(t, err)
  assert.Equal(t, "Sorry about the headache. Rest up!", result.Response)
  assert.Equal(t, []string{"headache", "light sensitivity"}, result.Symptoms)

  // Both turns were persisted in order.
  history, err := store.GetTodaysHistory(context.Background(), 7, 0)
  require.NoError(t, err)
  require.Len(t, history, 2)
  assert.Equal(t, "user", history[0].Sender)
  assert.Equal(t, "ai", history[1].Sender)
  assert.NotEmpty(t, history[0].ID)

  // Extracted symptoms were logged without severity or duration.
  require.Len(t, symptomRepo.created, 2)
  assert.Equal(t, "headache", symptomRepo.created[0].Symptom)
  assert.Nil(t, symptomRepo.created[0].Severity)
  assert.Nil(t, symptomRepo.created[0].Duration)
}

func TestChatServiceGenerationFailureFallsBack(t *testing.T) {
  store := newFakeChatStore()
  generator := &fakeGenerator{err: assertErr("upstream down")}
  symptomRepo := &fakeSymptomRepo{}
  contextSvc := &fakeContextService{block: "profile"}

  svc := NewChatService(newTestLogger(t), store, contextSvc, generator, symptomRepo)

  result, err := svc.HandleConversation(context.Background(), 3, "hello")
  require.NoError(t, err)
  assert.Equal(t, chatFallbackReply, result.Response)
  assert.Empty(t, result.Symptoms)
  assert.Empty(t, symptomRepo.created)

  // The fallback reply is still saved as the AI turn.
  history, err := store.GetTodaysHistory(context.Background(), 3, 0)
  require.NoError(t, err)
  require.Len(t, history, 2)
  assert.Equal(t, chatFallbackReply, history[1].Message)
}

func TestChatServicePromptIncludesContextAndHistory(t *testing.T) {
  store := newFakeChatStore()
  generator := &fakeGenerator{replies: []string{
    `{"response": "ok", "symptoms": []}`,
    `{"response": "ok again", "symptoms": []}`,
  }}
  contextSvc := &fakeContextService{block: "CONTEXT-BLOCK-MARKER"}

  svc := NewChatService(newTestLogger(t), store, contextSvc, generator, &fakeSymptomRepo{})

  _, err := svc.HandleConversation(context.Background(), 5, "first message")
  require.NoError(t, err)
  _, err = svc.HandleConversation(context.Background(), 5, "second message")
  require.NoError(t, err)

  require.Len(t, generator.prompts, 2)
  assert.Contains(t, generator.prompts[0], "CONTEXT-BLOCK-MARKER")
  assert.Contains(t, generator.prompts[1], "Today's Conversation")
  assert.Contains(t, generator.prompts[1], "first message")
  assert.True(t, strings.Contains(generator.prompts[1], `Current User Message: "second message"`))
}
