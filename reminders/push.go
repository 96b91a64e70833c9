package reminders

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/medremind/med-reminder-api/models"
)

const expoPushURL = "https://exp.host/--/api/v2/push/send"

// ExpoPushMessage is the request body accepted by the Expo push service
type ExpoPushMessage struct {
	To    []string `json:"to"`
	Sound string   `json:"sound"`
	Title string   `json:"title"`
	Body  string   `json:"body"`
}

// ExpoNotifier sends reminder push notifications through the Expo push
// service. With no registered device tokens every call is a no-op.
type ExpoNotifier struct {
	tokens []string
	client *http.Client
}

// NewExpoNotifier creates a notifier for the given device tokens
func NewExpoNotifier(tokens []string) *ExpoNotifier {
	return &ExpoNotifier{
		tokens: tokens,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Schedule arms a one-shot push for the reminder's wall-clock time today,
// or tomorrow if that time has already passed. Unparseable times are
// logged and skipped; the reminder itself is still stored.
func (e *ExpoNotifier) Schedule(reminder models.Reminder) {
	if len(e.tokens) == 0 {
		return
	}

	at, err := nextOccurrence(reminder.Time, time.Now())
	if err != nil {
		zap.S().Warnw("skipping push for reminder with unparseable time",
			"reminderId", reminder.ID,
			"time", reminder.Time)
		return
	}

	time.AfterFunc(time.Until(at), func() {
		title := "Medication Reminder"
		body := fmt.Sprintf("Time to take %s (%s)", reminder.Medicine, reminder.Dosage)
		if err := e.Send(title, body); err != nil {
			zap.S().With(err).Errorw("failed to send reminder push",
				"reminderId", reminder.ID)
		}
	})
}

// Send pushes one notification to every registered device token
func (e *ExpoNotifier) Send(title, body string) error {
	if len(e.tokens) == 0 {
		return nil
	}

	msg := ExpoPushMessage{
		To:    e.tokens,
		Sound: "default",
		Title: title,
		Body:  body,
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := e.client.Post(expoPushURL, "application/json", bytes.NewBuffer(b))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("expo push returned status %d", resp.StatusCode)
	}
	return nil
}

// nextOccurrence resolves an "HH:MM" or "3:04 PM" wall-clock value to the
// next time it occurs relative to now
func nextOccurrence(value string, now time.Time) (time.Time, error) {
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

	at := time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location())
	if !at.After(now) {
		at = at.Add(24 * time.Hour)
	}
	return at, nil
}
