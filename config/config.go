package config

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	URL                string
	DatabaseName       string
	BaseURL            string
	Port               string
	PlaintextPasswords bool
	SendgridAPIKey     string
	AlertFromEmail     string
	ReminderStorePath  string
	SpeechURL          string
	ExpoPushTokens     []string
}

// New sets up all config related services
func New() *Config {

	logger, err := setLogger(os.Getenv("APP_ENV"))
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:                os.Getenv("DB_URI"),
		DatabaseName:       os.Getenv("DB_NAME"),
		BaseURL:            os.Getenv("BASE_URL"),
		Port:               os.Getenv("PORT"),
		PlaintextPasswords: os.Getenv("PLAINTEXT_PASSWORDS") == "true",
		SendgridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		AlertFromEmail:     os.Getenv("ALERT_FROM_EMAIL"),
		ReminderStorePath:  reminderStorePath(),
		SpeechURL:          os.Getenv("SPEECH_URL"),
		ExpoPushTokens:     splitTokens(os.Getenv("EXPO_PUSH_TOKENS")),
	}
}

// setLogger returns the zap logger flavor for the given environment
func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}

func reminderStorePath() string {
	if p := os.Getenv("REMINDER_STORE_PATH"); p != "" {
		return p
	}
	return "reminders.json"
}

func splitTokens(raw string) []string {
	if raw == "" {
		return nil
	}
	var tokens []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
}
