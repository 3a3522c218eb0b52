package services

import (
  "fmt"
  "os"

  "gopkg.in/yaml.v3"
)

// Signal names a boolean fact computed from the user's stored data. Rules
// reference signals instead of matching substrings of rendered prompt text.
const (
  SignalRecentSymptoms    = "recent_symptoms"
  SignalActiveMedications = "active_medications"
  SignalCheckupRecorded   = "checkup_recorded"
)

// NotificationRule selects a notification type when its signal is true.
// Rules are evaluated in file order; the first match wins.
type NotificationRule struct {
  Type  string  `yaml:"type"`
  When  string  `yaml:"when"`
}

// NotificationRuleSet is the ordered classifier for the daily personalized
// notification type.
type NotificationRuleSet struct {
  Rules    []NotificationRule  `yaml:"rules"`
  Default  string              `yaml:"default"`
}

const defaultNotificationRulesYAML = `rules:
  - type: symptom_followup
    when: recent_symptoms
  - type: medication
    when: active_medications
  - type: checkup
    when: checkup_recorded
default: wellness
`

var validNotificationTypes = map[string]bool{
  "medication":       true,
  "wellness":         true,
  "symptom_followup": true,
  "checkup":          true,
  "general":          true,
}

var validSignals = map[string]bool{
  SignalRecentSymptoms:    true,
  SignalActiveMedications: true,
  SignalCheckupRecorded:   true,
}

// LoadNotificationRules reads the rule file at path, or the built-in default
// set when path is empty.
func LoadNotificationRules(path string) (*NotificationRuleSet, error) {
  raw := []byte(defaultNotificationRulesYAML)
  if path != "" {
    data, err := os.ReadFile(path)
    if err != nil {
      return nil, fmt.Errorf("failed to read notification rules: %w", err)
    }
    raw = data
  }

  var set NotificationRuleSet
  if err := yaml.Unmarshal(raw, &set); err != nil {
    return nil, fmt.Errorf("failed to parse notification rules: %w", err)
  }

  if set.Default == "" {
    set.Default = "wellness"
  }
  if !validNotificationTypes[set.Default] {
    return nil, fmt.Errorf("unknown default notification type %q", set.Default)
  }
  for _, rule := range set.Rules {
    if !validNotificationTypes[rule.Type] {
      return nil, fmt.Errorf("unknown notification type %q in rules", rule.Type)
    }
    if !validSignals[rule.When] {
      return nil, fmt.Errorf("unknown signal %q in rules", rule.When)
    }
  }
  return &set, nil
}

// Classify returns the first rule type whose signal is set, else the default.
func (rs *NotificationRuleSet) Classify(signals map[string]bool) string {
  for _, rule := range rs.Rules {
    if signals[rule.When] {
      return rule.Type
    }
  }
  return rs.Default
}
