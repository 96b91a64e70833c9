package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/medremind/med-reminder-api/config"
	"github.com/medremind/med-reminder-api/databases"
	"github.com/medremind/med-reminder-api/models"
)

// Notification exported for testing purposes
type Notification struct {
	DB databases.NotificationDatabase
}

// UnreadByPatientHandler returns the unread notifications for a patient,
// newest first. A patient with no unread notifications gets an empty list.
func (n Notification) UnreadByPatientHandler(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patient_id"]

	notifications, err := n.DB.ListUnreadByPatient(r.Context(), patientID)
	if err != nil {
		config.ErrorStatus("failed to get notifications", http.StatusInternalServerError, w, err)
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}

	b, err := json.Marshal(notifications)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
