package services

import (
  "context"
  "fmt"
  "strings"

  "golang.org/x/sync/errgroup"

  "github.com/caretrack/caretrack-backend/internal/apierr"
  "github.com/caretrack/caretrack-backend/internal/logger"
  "github.com/caretrack/caretrack-backend/internal/repos"
  "github.com/caretrack/caretrack-backend/internal/types"
)

const (
  contextSymptomDays  = 30
  contextSymptomLimit = 10
  contextMedDays      = 30
  contextMedLimit     = 5
  contextReportDays   = 30
  contextReportLimit  = 3
  contextReportChars  = 100
)

// ContextService renders everything known about a user into one plain-text
// block suitable for prepending to a generation prompt.
type ContextService interface {
  BuildContextBlock(ctx context.Context, userID int64) (string, error)
}

type contextService struct {
  log            *logger.Logger
  userRepo       repos.UserRepo
  symptomRepo    repos.SymptomRepo
  disorderRepo   repos.DisorderRepo
  medicationRepo repos.MedicationRepo
  reportRepo     repos.ReportRepo
}

func NewContextService(
  baseLog *logger.Logger,
  userRepo repos.UserRepo,
  symptomRepo repos.SymptomRepo,
  disorderRepo repos.DisorderRepo,
  medicationRepo repos.MedicationRepo,
  reportRepo repos.ReportRepo,
) ContextService {
  return &contextService{
    log:            baseLog.With("service", "ContextService"),
    userRepo:       userRepo,
    symptomRepo:    symptomRepo,
    disorderRepo:   disorderRepo,
    medicationRepo: medicationRepo,
    reportRepo:     reportRepo,
  }
}

// BuildContextBlock returns a sentinel string (never an error) when the user
// does not exist, so callers can still hand the model something coherent.
func (s *contextService) BuildContextBlock(ctx context.Context, userID int64) (string, error) {
  user, err := s.userRepo.GetByID(ctx, nil, userID)
  if err != nil {
    if apierr.IsNotFound(err) {
      return fmt.Sprintf("User with ID %d not found.", userID), nil
    }
    return "", err
  }

  var (
    symptoms  []*types.Symptom
    disorders []*types.UserDisorderDetail
    schedule  []*types.MedicationScheduleDetail
    reports   []*types.Report
  )

  g, gctx := errgroup.WithContext(ctx)
  g.Go(func() error {
    var err error
    symptoms, err = s.symptomRepo.GetRecent(gctx, nil, userID, contextSymptomDays, contextSymptomLimit)
    return err
  })
  g.Go(func() error {
    var err error
    disorders, err = s.disorderRepo.GetUserDisorders(gctx, nil, userID)
    return err
  })
  g.Go(func() error {
    var err error
    schedule, err = s.medicationRepo.GetRecentSchedule(gctx, nil, userID, contextMedDays, contextMedLimit)
    return err
  })
  g.Go(func() error {
    var err error
    reports, err = s.reportRepo.GetRecent(gctx, nil, userID, contextReportDays, contextReportLimit)
    return err
  })
  if err := g.Wait(); err != nil {
    return "", err
  }

  return renderContextBlock(user, symptoms, disorders, schedule, reports), nil
}

func renderContextBlock(
  user *types.User,
  symptoms []*types.Symptom,
  disorders []*types.UserDisorderDetail,
  schedule []*types.MedicationScheduleDetail,
  reports []*types.Report,
) string {
  var b strings.Builder

  fmt.Fprintf(&b, "\n=== COMPREHENSIVE USER HEALTH PROFILE ===\n")
  fmt.Fprintf(&b, "User ID: %d\n", user.ID)

  fmt.Fprintf(&b, "\n--- BASIC INFORMATION ---\n")
  fmt.Fprintf(&b, "Name: %s\n", user.Name)
  fmt.Fprintf(&b, "Age: %s\n", fmtInt(user.Age))
  fmt.Fprintf(&b, "Gender: %s\n", fmtStr(user.Gender))
  fmt.Fprintf(&b, "Email: %s\n", fmtStr(user.Email))
  fmt.Fprintf(&b, "Created: %s\n", user.CreatedAt.Format("2006-01-02 15:04:05"))

  fmt.Fprintf(&b, "\n--- PHYSICAL METRICS ---\n")
  fmt.Fprintf(&b, "Height: %s cm\n", fmtFloat(user.HeightCm))
  fmt.Fprintf(&b, "Weight: %s kg\n", fmtFloat(user.WeightKg))
  fmt.Fprintf(&b, "BMI: %s\n", fmtFloat(user.BMI))
  fmt.Fprintf(&b, "Blood Group: %s\n", fmtStr(user.BloodGroup))
  fmt.Fprintf(&b, "Activity Level: %s\n", fmtStr(user.ActivityLevel))

  fmt.Fprintf(&b, "\n--- HEALTH INDICATORS ---\n")
  fmt.Fprintf(&b, "Gym Member: %s\n", fmtBool(user.GymMember))
  fmt.Fprintf(&b, "Smoker: %s\n", fmtBool(user.Smoker))
  fmt.Fprintf(&b, "Alcohol Consumer: %s\n", fmtBool(user.Alcohol))
  fmt.Fprintf(&b, "On Medications: %s\n", fmtBool(user.Medications))
  fmt.Fprintf(&b, "Ever Hospitalized: %s\n", fmtBool(user.EverHospitalized))
  fmt.Fprintf(&b, "Ever Had Concussion: %s\n", fmtBool(user.EverConcussion))

  fmt.Fprintf(&b, "\n--- MEDICAL CONDITIONS & ALLERGIES ---\n")
  fmt.Fprintf(&b, "Medical Conditions: %s\n", fmtStr(user.MedicalConditions))
  fmt.Fprintf(&b, "Allergies: %s\n", fmtStr(user.Allergies))

  fmt.Fprintf(&b, "\n--- AVERAGE HEALTH METRICS ---\n")
  fmt.Fprintf(&b, "Average Sleep Hours: %s\n", fmtFloat(user.AvgSleepHours))
  fmt.Fprintf(&b, "Average Blood Pressure: %s\n", fmtStr(user.AvgBloodPressure))
  fmt.Fprintf(&b, "Average Heart Rate: %s BPM\n", fmtInt(user.AvgHeartRate))
  fmt.Fprintf(&b, "Average Water Intake: %s liters\n", fmtFloat(user.AvgWaterIntake))
  fmt.Fprintf(&b, "Average Steps Per Day: %s\n", fmtInt(user.StepsPerDay))

  fmt.Fprintf(&b, "\n--- LAB VALUES ---\n")
  fmt.Fprintf(&b, "Cholesterol Level: %s mg/dL\n", fmtFloat(user.CholesterolLevel))
  fmt.Fprintf(&b, "Blood Sugar Level: %s mg/dL\n", fmtFloat(user.BloodSugarLevel))

  fmt.Fprintf(&b, "\n--- RECENT SYMPTOMS (Last 30 days) ---\n")
  if len(symptoms) == 0 {
    b.WriteString("No recent symptoms recorded.\n")
  } else {
    for _, sym := range symptoms {
      fmt.Fprintf(&b, "• %s (Severity: %s, Duration: %s) - %s\n",
        sym.Symptom, fmtStr(sym.Severity), fmtStr(sym.Duration),
        sym.LogDate.Format("2006-01-02 15:04:05"))
    }
  }

  fmt.Fprintf(&b, "\n--- DIAGNOSED DISORDERS ---\n")
  if len(disorders) == 0 {
    b.WriteString("No diagnosed disorders recorded.\n")
  } else {
    for _, d := range disorders {
      resolved := "Ongoing"
      if d.ResolvedDate != nil && *d.ResolvedDate != "" {
        resolved = *d.ResolvedDate
      }
      fmt.Fprintf(&b, "• %s (Diagnosed: %s, Resolved: %s)\n", d.DisorderName, d.DiagnosedDate, resolved)
    }
  }

  fmt.Fprintf(&b, "\n--- CURRENT MEDICATIONS ---\n")
  if len(schedule) == 0 {
    b.WriteString("No current medications recorded.\n")
  } else {
    for _, m := range schedule {
      fmt.Fprintf(&b, "• %s (%s) - %s\n", m.MedicationName, fmtStr(m.Dosage), fmtStr(m.Frequency))
    }
  }

  fmt.Fprintf(&b, "\n--- RECENT HEALTH REPORTS ---\n")
  if len(reports) == 0 {
    b.WriteString("No health reports available.\n")
  } else {
    for _, r := range reports {
      fmt.Fprintf(&b, "• %s Report (%s): %s...\n",
        fmtStr(r.ReportType), r.ReportDate, truncate(fmtStr(r.Content), contextReportChars))
    }
  }

  fmt.Fprintf(&b, "\n--- EMERGENCY CONTACT ---\n")
  fmt.Fprintf(&b, "%s\n", fmtStr(user.EmergencyContact))

  fmt.Fprintf(&b, "\n--- RECENT SUMMARIES ---\n")
  fmt.Fprintf(&b, "Yesterday's Summary: %s\n", fmtStr(user.YesterdaySummary))
  fmt.Fprintf(&b, "Last Month's Summary: %s\n", fmtStr(user.LastMonthSummary))

  fmt.Fprintf(&b, "\n--- LAST CHECKUP ---\n")
  fmt.Fprintf(&b, "%s\n", fmtStr(user.LastCheckup))

  fmt.Fprintf(&b, "\n=== END OF USER HEALTH PROFILE ===\n")

  return b.String()
}

func fmtStr(v *string) string {
  if v == nil || *v == "" {
    return "N/A"
  }
  return *v
}

func fmtInt(v *int) string {
  if v == nil {
    return "N/A"
  }
  return fmt.Sprintf("%d", *v)
}

func fmtFloat(v *float64) string {
  if v == nil {
    return "N/A"
  }
  return fmt.Sprintf("%g", *v)
}

func fmtBool(v *bool) string {
  if v == nil {
    return "N/A"
  }
  if *v {
    return "Yes"
  }
  return "No"
}

func truncate(s string, n int) string {
  runes := []rune(s)
  if len(runes) <= n {
    return s
  }
  return string(runes[:n])
}
