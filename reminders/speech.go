package reminders

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HTTPSpeaker forwards reminder text to an external text-to-speech
// endpoint. Speech is a side effect, never part of the request path: calls
// are fire and forget, and with no endpoint configured they are no-ops.
type HTTPSpeaker struct {
	url    string
	client *http.Client
}

// NewHTTPSpeaker creates a speaker posting to the given endpoint
func NewHTTPSpeaker(url string) *HTTPSpeaker {
	return &HTTPSpeaker{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Speak sends the text to the speech endpoint in the background
func (s *HTTPSpeaker) Speak(text string) {
	if s.url == "" || text == "" {
		return
	}

	go func() {
		b, err := json.Marshal(map[string]string{"text": text})
		if err != nil {
			zap.S().With(err).Error("failed to marshal speech request")
			return
		}
		resp, err := s.client.Post(s.url, "application/json", bytes.NewBuffer(b))
		if err != nil {
			zap.S().With(err).Error("failed to reach speech endpoint")
			return
		}
		resp.Body.Close()
	}()
}
