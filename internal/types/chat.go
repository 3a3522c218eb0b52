package types

import (
  "time"
)

// ChatMessage is one turn inside a per-user per-day chat document.
type ChatMessage struct {
  ID         string      `json:"id"`
  Sender     string      `json:"sender"`
  Message    string      `json:"message"`
  Timestamp  time.Time   `json:"timestamp"`
}

// DailyDocument is the document-store record for one user and one day. It
// holds either a growing conversation array or, once summarized, a summary.
// The two states are mutually exclusive over the document's lifetime: the
// summarizer replaces the whole document and the transcript is discarded.
type DailyDocument struct {
  Conversation  []ChatMessage   `json:"conversation,omitempty"`
  Summary       *string         `json:"summary,omitempty"`
  SummarizedAt  *time.Time      `json:"summarized_at,omitempty"`
}

// DailySummary pairs a past day's date with its stored summary text.
type DailySummary struct {
  Date     string    `json:"date"`
  Summary  string    `json:"summary"`
}
