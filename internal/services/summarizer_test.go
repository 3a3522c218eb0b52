package services

import (
  "context"
  "testing"
  "time"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "github.com/caretrack/caretrack-backend/internal/types"
)

func TestSummarizerNoConversation(t *testing.T) {
  store := newFakeChatStore()
  generator := &fakeGenerator{}

  svc := NewSummarizerService(newTestLogger(t), store, generator)

  summary, err := svc.SummarizeDay(context.Background(), 1)
  require.NoError(t, err)
  assert.Equal(t, NoConversationMessage, summary)
  assert.Empty(t, generator.prompts)
}

func TestSummarizerReplacesTranscript(t *testing.T) {
  store := newFakeChatStore()
  generator := &fakeGenerator{replies: []string{"The user reported mild headaches and discussed a new running routine."}}

  require.NoError(t, store.AppendMessage(context.Background(), 1, types.ChatMessage{Sender: "user", Message: "I had a headache after my run"}))
  require.NoError(t, store.AppendMessage(context.Background(), 1, types.ChatMessage{Sender: "ai", Message: "How long did it last?"}))

  svc := NewSummarizerService(newTestLogger(t), store, generator)

  summary, err := svc.SummarizeDay(context.Background(), 1)
  require.NoError(t, err)
  assert.Equal(t, "The user reported mild headaches and discussed a new running routine.", summary)

  // The prompt carried the transcript with role labels.
  require.Len(t, generator.prompts, 1)
  assert.Contains(t, generator.prompts[0], "User: I had a headache after my run")
  assert.Contains(t, generator.prompts[0], "Assistant: How long did it last?")

  // Transcript is gone; a second run has nothing to summarize.
  today := time.Now().UTC().Format("2006-01-02")
  conversation, err := store.GetFullConversation(context.Background(), 1, today)
  require.NoError(t, err)
  assert.Empty(t, conversation)

  summary, err = svc.SummarizeDay(context.Background(), 1)
  require.NoError(t, err)
  assert.Equal(t, NoConversationMessage, summary)
}
