package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/medremind/med-reminder-api/config"
	"github.com/medremind/med-reminder-api/models"
	"github.com/medremind/med-reminder-api/reminders"
)

// Reminder exported for testing purposes
type Reminder struct {
	Store    *reminders.Store
	Notifier *reminders.ExpoNotifier
	Speaker  *reminders.HTTPSpeaker
}

type speakRequest struct {
	Text string `json:"text"`
}

// CreateReminderHandler stores a local reminder and arms its push
// notification. Both patientId and patient naming are accepted in the body;
// whichever the caller sent is kept as-is.
func (h Reminder) CreateReminderHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.Reminder
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Medicine == "" || req.Time == "" {
		http.Error(w, "medicine and time are required", http.StatusBadRequest)
		return
	}

	stored, err := h.Store.Add(req)
	if err != nil {
		config.ErrorStatus("failed to store reminder", http.StatusInternalServerError, w, err)
		return
	}

	h.Notifier.Schedule(stored)
	h.Speaker.Speak(fmt.Sprintf("Reminder set for %s at %s", stored.Medicine, stored.Time))

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(stored); err != nil {
		zap.S().With(err).Error("failed to encode created reminder response")
	}
}

// ListRemindersHandler returns the full local reminder list
func (h Reminder) ListRemindersHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	list := h.Store.List()
	if err := json.NewEncoder(w).Encode(list); err != nil {
		zap.S().With(err).Error("failed to encode reminder list response")
	}
}

// MarkReminderTakenHandler flips the reminder at the given list position to
// taken
func (h Reminder) MarkReminderTakenHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		config.ErrorStatus("invalid reminder index", http.StatusBadRequest, w, err)
		return
	}

	reminder, err := h.Store.MarkTaken(index)
	if errors.Is(err, reminders.ErrIndexOutOfRange) {
		config.ErrorStatus("reminder not found", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to mark reminder as taken", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(reminder); err != nil {
		zap.S().With(err).Error("failed to encode reminder response")
	}
}

// DeleteReminderHandler removes a reminder by its id
func (h Reminder) DeleteReminderHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := mux.Vars(r)["reminder_id"]
	err := h.Store.Remove(id)
	if errors.Is(err, reminders.ErrReminderNotFound) {
		config.ErrorStatus("reminder not found", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to delete reminder", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"deleted": true}`))
}

// SpeakHandler reads the given text aloud through the configured speech
// endpoint
func (h Reminder) SpeakHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req speakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	h.Speaker.Speak(req.Text)

	w.WriteHeader(http.StatusAccepted)
	w.Write([]byte(`{"queued": true}`))
}
