package services

import (
  "os"
  "path/filepath"
  "testing"
)

func TestDefaultNotificationRules(t *testing.T) {
  set, err := LoadNotificationRules("")
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }

  tests := []struct {
    name     string
    signals  map[string]bool
    want     string
  }{
    {
      name:    "symptoms win over everything",
      signals: map[string]bool{SignalRecentSymptoms: true, SignalActiveMedications: true, SignalCheckupRecorded: true},
      want:    "symptom_followup",
    },
    {
      name:    "medications before checkup",
      signals: map[string]bool{SignalActiveMedications: true, SignalCheckupRecorded: true},
      want:    "medication",
    },
    {
      name:    "checkup alone",
      signals: map[string]bool{SignalCheckupRecorded: true},
      want:    "checkup",
    },
    {
      name:    "nothing set falls back to wellness",
      signals: map[string]bool{},
      want:    "wellness",
    },
  }

  for _, tt := range tests {
    t.Run(tt.name, func(t *testing.T) {
      if got := set.Classify(tt.signals); got != tt.want {
        t.Fatalf("Classify() = %q, want %q", got, tt.want)
      }
    })
  }
}

func TestLoadNotificationRulesFromFile(t *testing.T) {
  dir := t.TempDir()
  path := filepath.Join(dir, "rules.yaml")
  content := `rules:
  - type: medication
    when: active_medications
default: general
`
  if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
    t.Fatalf("write rules file: %v", err)
  }

  set, err := LoadNotificationRules(path)
  if err != nil {
    t.Fatalf("unexpected error: %v", err)
  }
  if got := set.Classify(map[string]bool{SignalActiveMedications: true}); got != "medication" {
    t.Fatalf("Classify() = %q, want %q", got, "medication")
  }
  if got := set.Classify(map[string]bool{SignalRecentSymptoms: true}); got != "general" {
    t.Fatalf("Classify() = %q, want %q", got, "general")
  }
}

func TestLoadNotificationRulesRejectsUnknowns(t *testing.T) {
  dir := t.TempDir()

  badType := filepath.Join(dir, "bad_type.yaml")
  if err := os.WriteFile(badType, []byte("rules:\n  - type: spam\n    when: recent_symptoms\n"), 0o644); err != nil {
    t.Fatalf("write rules file: %v", err)
  }
  if _, err := LoadNotificationRules(badType); err == nil {
    t.Fatal("expected error for unknown notification type")
  }

  badSignal := filepath.Join(dir, "bad_signal.yaml")
  if err := os.WriteFile(badSignal, []byte("rules:\n  - type: wellness\n    when: moon_phase\n"), 0o644); err != nil {
    t.Fatalf("write rules file: %v", err)
  }
  if _, err := LoadNotificationRules(badSignal); err == nil {
    t.Fatal("expected error for unknown signal")
  }
}
