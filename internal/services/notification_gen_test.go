package services

import (
  "context"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "github.com/caretrack/caretrack-backend/internal/types"
)

func newGenServiceForTest(t *testing.T, generator *fakeGenerator, symptomRepo *fakeSymptomRepo, medicationRepo *fakeMedicationRepo, userRepo *fakeUserRepo) NotificationGenService {
  t.Helper()
  rules, err := LoadNotificationRules("")
  require.NoError(t, err)
  return NewNotificationGenService(
    newTestLogger(t),
    nil,
    &fakeContextService{block: "=== COMPREHENSIVE USER HEALTH PROFILE ==="},
    generator,
    rules,
    symptomRepo,
    medicationRepo,
    userRepo,
    nil,
  )
}

func TestGenerateOverridesEchoedType(t *testing.T) {
  generator := &fakeGenerator{replies: []string{
    `{"title": "Pill time!", "message": "Time for your evening dose.", "notification_type": "general"}`,
  }}
  svc := newGenServiceForTest(t, generator, &fakeSymptomRepo{}, &fakeMedicationRepo{}, &fakeUserRepo{})

  got := svc.Generate(context.Background(), 1, "medication", "")
  assert.Equal(t, "Pill time!", got.Title)
  assert.Equal(t, "medication", got.NotificationType)
}

func TestGenerateParseFailureKeepsRequestedType(t *testing.T) {
  generator := &fakeGenerator{replies: []string{"this is not json"}}
  svc := newGenServiceForTest(t, generator, &fakeSymptomRepo{}, &fakeMedicationRepo{}, &fakeUserRepo{})

  got := svc.Generate(context.Background(), 1, "wellness", "")
  assert.Equal(t, "Health Check-in", got.Title)
  assert.Equal(t, "Hi! Just checking in on your health journey. Keep up the great work!", got.Message)
  assert.Equal(t, "wellness", got.NotificationType)
}

func TestGenerateContextFailureFallsBack(t *testing.T) {
  rules, err := LoadNotificationRules("")
  require.NoError(t, err)
  svc := NewNotificationGenService(
    newTestLogger(t),
    nil,
    &fakeContextService{err: assertErr("db down")},
    &fakeGenerator{},
    rules,
    &fakeSymptomRepo{},
    &fakeMedicationRepo{},
    &fakeUserRepo{},
    nil,
  )

  got := svc.Generate(context.Background(), 1, "checkup", "")
  assert.Equal(t, "Health Reminder", got.Title)
  assert.Equal(t, "checkup", got.NotificationType)
}

func TestGenerateUnknownTypeBecomesGeneral(t *testing.T) {
  generator := &fakeGenerator{replies: []string{
    `{"title": "Hello", "message": "Keep it up!", "notification_type": "general"}`,
  }}
  svc := newGenServiceForTest(t, generator, &fakeSymptomRepo{}, &fakeMedicationRepo{}, &fakeUserRepo{})

  got := svc.Generate(context.Background(), 1, "carrier_pigeon", "")
  assert.Equal(t, "general", got.NotificationType)
}

func TestGenerateDailyClassifiesFromSignals(t *testing.T) {
  lastCheckup := "2026-05-01"
  userRepo := &fakeUserRepo{user: &types.User{ID: 1, Name: "Walt", LastCheckup: &lastCheckup}}

  tests := []struct {
    name        string
    symptoms    []*types.Symptom
    schedule    []*types.MedicationScheduleDetail
    wantType    string
  }{
    {
      name:     "recent symptoms pick followup",
      symptoms: []*types.Symptom{{Symptom: "dizziness"}},
      wantType: "symptom_followup",
    },
    {
      name:     "medication schedule picks medication",
      schedule: []*types.MedicationScheduleDetail{{MedicationName: "Lisinopril"}},
      wantType: "medication",
    },
    {
      name:     "checkup date picks checkup",
      wantType: "checkup",
    },
  }

  for _, tt := range tests {
    t.Run(tt.name, func(t *testing.T) {
      generator := &fakeGenerator{replies: []string{
        `{"title": "Hi", "message": "Take care!", "notification_type": "general"}`,
      }}
      svc := newGenServiceForTest(t, generator,
        &fakeSymptomRepo{recent: tt.symptoms},
        &fakeMedicationRepo{recent: tt.schedule},
        userRepo,
      )

      got := svc.GenerateDaily(context.Background(), 1)
      assert.Equal(t, tt.wantType, got.NotificationType)
    })
  }
}

func TestGenerateMultipleDefaultsTypes(t *testing.T) {
  generator := &fakeGenerator{replies: []string{
    `{"title": "a", "message": "m", "notification_type": "x"}`,
    `{"title": "b", "message": "m", "notification_type": "x"}`,
    `{"title": "c", "message": "m", "notification_type": "x"}`,
  }}
  svc := newGenServiceForTest(t, generator, &fakeSymptomRepo{}, &fakeMedicationRepo{}, &fakeUserRepo{})

  got := svc.GenerateMultiple(context.Background(), 1, nil)
  require.Len(t, got, 3)
  assert.Equal(t, "wellness", got[0].NotificationType)
  assert.Equal(t, "medication", got[1].NotificationType)
  assert.Equal(t, "general", got[2].NotificationType)
}
