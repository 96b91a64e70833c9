package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/medremind/med-reminder-api/api"
	"github.com/medremind/med-reminder-api/databases"
	"github.com/medremind/med-reminder-api/models"
)

const supplyAlertCooldown = 24 * time.Hour

// Scheduler handles periodic background jobs for the medication feed
type Scheduler struct {
	cron *cron.Cron
	MDB  databases.MedicationDatabase
	ADB  databases.AccountDatabase

	sendgridKey string
	fromEmail   string
}

// New creates the scheduler with its database handles and mail settings
func New(mdb databases.MedicationDatabase, adb databases.AccountDatabase, sendgridKey, fromEmail string) *Scheduler {
	return &Scheduler{
		cron:        cron.New(cron.WithLocation(time.UTC)),
		MDB:         mdb,
		ADB:         adb,
		sendgridKey: sendgridKey,
		fromEmail:   fromEmail,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Sweep still-pending dose slots whose time has passed every minute
	_, err := s.cron.AddFunc("* * * * *", s.sweepMissedDoses)
	if err != nil {
		zap.S().Errorw("failed to register missed-dose sweep job", "error", err)
	}

	// Alert guardians about critically low supplies hourly
	_, err = s.cron.AddFunc("0 * * * *", s.sendSupplyAlerts)
	if err != nil {
		zap.S().Errorw("failed to register supply alert job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Medication scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Medication scheduler stopped")
}

// sweepMissedDoses flips pending slots to missed once their scheduled
// wall-clock time for today is behind us. Already-taken slots are guarded
// at the database layer.
func (s *Scheduler) sweepMissedDoses() {
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	medications, err := s.MDB.List(ctx)
	if err != nil {
		zap.S().With(err).Error("missed-dose sweep failed to list medications")
		return
	}

	now := time.Now()
	for _, med := range medications {
		for scheduleID, slot := range med.Schedules {
			if slot.Status != models.StatusPending {
				continue
			}
			at, err := todayAt(slot.Time, now)
			if err != nil {
				continue
			}
			if at.After(now) {
				continue
			}
			if err := s.MDB.MarkDoseMissed(ctx, med.ID.Hex(), scheduleID); err != nil {
				zap.S().With(err).Errorw("failed to mark dose as missed",
					"medicationId", med.ID.Hex(),
					"scheduleId", scheduleID)
			}
		}
	}
}

// sendSupplyAlerts emails each patient's guardian when a medication hits
// Critical supply, at most once per cooldown window per medication.
func (s *Scheduler) sendSupplyAlerts() {
	if s.sendgridKey == "" {
		return
	}

	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	medications, err := s.MDB.List(ctx)
	if err != nil {
		zap.S().With(err).Error("supply alert job failed to list medications")
		return
	}

	now := time.Now()
	for _, med := range medications {
		if models.SupplyStatus(med.SupplyLeft) != models.SupplyCritical {
			continue
		}
		if med.LastSupplyAlertAt != nil && now.Sub(med.LastSupplyAlertAt.Time()) < supplyAlertCooldown {
			continue
		}

		patient, err := s.ADB.FindByRoleID(ctx, "patientID", med.PatientID)
		if err != nil {
			zap.S().With(err).Warnw("supply alert skipped, patient not found",
				"patientId", med.PatientID)
			continue
		}
		if patient.GuardianRefID == "" {
			continue
		}
		guardian, err := s.ADB.FindByRoleID(ctx, "guardianID", patient.GuardianRefID)
		if err != nil {
			zap.S().With(err).Warnw("supply alert skipped, guardian not found",
				"guardianId", patient.GuardianRefID)
			continue
		}

		subject := fmt.Sprintf("Low medication supply for %s", patient.FullName)
		body := fmt.Sprintf(
			"%s has only %d doses of %s (%s) left. Please arrange a refill.",
			patient.FullName, med.SupplyLeft, med.Name, med.Dosage,
		)
		if err := s.sendEmail(guardian.Email, guardian.FullName, subject, body); err != nil {
			zap.S().With(err).Errorw("failed to send supply alert",
				"medicationId", med.ID.Hex())
			continue
		}

		if err := s.MDB.StampSupplyAlert(ctx, med.ID.Hex()); err != nil {
			zap.S().With(err).Errorw("failed to stamp supply alert",
				"medicationId", med.ID.Hex())
		}
	}
}

func (s *Scheduler) sendEmail(toEmail, toName, subject, plainText string) error {
	from := mail.NewEmail("Med Reminder", s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, plainText)
	client := sendgrid.NewSendClient(s.sendgridKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
	return nil
}

// todayAt resolves an "HH:MM" or "3:04 PM" wall-clock value against now's
// date
func todayAt(value string, now time.Time) (time.Time, error) {
	var parsed time.Time
	var err error
	for _, layout := range []string{"15:04", "3:04 PM", "3:04PM"} {
		parsed, err = time.Parse(layout, value)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location()), nil
}
