package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/medremind/med-reminder-api/config"
	"github.com/medremind/med-reminder-api/databases"
	"github.com/medremind/med-reminder-api/models"
)

// Medication exported for testing purposes
type Medication struct {
	DB  databases.MedicationDatabase
	NDB databases.NotificationDatabase
	ADB databases.AccountDatabase
}

// createMedicationRequest carries the prescription form fields plus the
// dose slots to seed as pending.
type createMedicationRequest struct {
	Name       string   `json:"name"`
	Dosage     string   `json:"dosage"`
	Frequency  string   `json:"frequency"`
	SupplyLeft int      `json:"supplyLeft"`
	PatientID  string   `json:"patientId"`
	Times      []string `json:"times"`
}

type updateMedicationRequest struct {
	Name       *string `json:"name"`
	Dosage     *string `json:"dosage"`
	Frequency  *string `json:"frequency"`
	SupplyLeft *int    `json:"supplyLeft"`
}

// medicationResponse decorates a medication with its derived supply level
type medicationResponse struct {
	models.Medication
	SupplyStatus string `json:"supplyStatus"`
}

func toMedicationResponse(m models.Medication) medicationResponse {
	return medicationResponse{Medication: m, SupplyStatus: models.SupplyStatus(m.SupplyLeft)}
}

// MedicationsByPatientHandler returns every medication belonging to a
// patient, newest first. No medications is an empty list, not an error.
func (m Medication) MedicationsByPatientHandler(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["patient_id"]

	meds, err := m.DB.ListByPatient(r.Context(), patientID)
	if err != nil {
		config.ErrorStatus("failed to get medications", http.StatusInternalServerError, w, err)
		return
	}

	out := make([]medicationResponse, 0, len(meds))
	for _, med := range meds {
		out = append(out, toMedicationResponse(med))
	}

	b, err := json.Marshal(out)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// MedicationByIDHandler returns a single medication document
func (m Medication) MedicationByIDHandler(w http.ResponseWriter, r *http.Request) {
	medID := mux.Vars(r)["medication_id"]

	med, err := m.DB.GetByID(r.Context(), medID)
	if errors.Is(err, models.ErrNoMatch) {
		config.ErrorStatus("medication not found", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to get medication by ID", http.StatusBadRequest, w, err)
		return
	}

	b, err := json.Marshal(toMedicationResponse(*med))
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateMedicationHandler inserts a new medication with one pending
// schedule slot per submitted time
func (m Medication) CreateMedicationHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req createMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Name == "" || req.Dosage == "" || req.PatientID == "" {
		http.Error(w, "name, dosage and patientId are required", http.StatusBadRequest)
		return
	}
	if len(req.Times) == 0 {
		http.Error(w, "at least one schedule time is required", http.StatusBadRequest)
		return
	}

	schedules := make(map[string]models.Schedule, len(req.Times))
	for i, t := range req.Times {
		schedules[fmt.Sprintf("slot_%d", i)] = models.Schedule{
			Time:   t,
			Status: models.StatusPending,
		}
	}

	med := &models.Medication{
		Name:       req.Name,
		Dosage:     req.Dosage,
		Frequency:  req.Frequency,
		SupplyLeft: req.SupplyLeft,
		PatientID:  req.PatientID,
		Schedules:  schedules,
	}

	if err := m.DB.Create(r.Context(), med); err != nil {
		config.ErrorStatus("failed to create medication", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toMedicationResponse(*med)); err != nil {
		zap.S().With(err).Error("failed to encode created medication response")
	}
}

// UpdateMedicationHandler applies a partial update to the prescription
// fields; schedule slots are not editable here
func (m Medication) UpdateMedicationHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	medID := mux.Vars(r)["medication_id"]

	var req updateMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	med, err := m.DB.GetByID(r.Context(), medID)
	if errors.Is(err, models.ErrNoMatch) {
		config.ErrorStatus("medication not found", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to get medication by ID", http.StatusBadRequest, w, err)
		return
	}

	if req.Name != nil {
		med.Name = *req.Name
	}
	if req.Dosage != nil {
		med.Dosage = *req.Dosage
	}
	if req.Frequency != nil {
		med.Frequency = *req.Frequency
	}
	if req.SupplyLeft != nil {
		med.SupplyLeft = *req.SupplyLeft
	}

	if err := m.DB.Update(r.Context(), medID, med); err != nil {
		config.ErrorStatus("failed to update medication", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toMedicationResponse(*med)); err != nil {
		zap.S().With(err).Error("failed to encode updated medication response")
	}
}

// MarkDoseTakenHandler flips a schedule slot to taken and records a
// medication_taken notification for the patient's watchers. The two writes
// touch separate documents; a notification failure after a successful slot
// update is reported as its own error so clients do not retry the dose.
func (m Medication) MarkDoseTakenHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	medID := vars["medication_id"]
	scheduleID := vars["schedule_id"]

	med, err := m.DB.MarkDoseTaken(r.Context(), medID, scheduleID)
	if errors.Is(err, models.ErrNoMatch) {
		config.ErrorStatus("medication not found", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to mark dose as taken", http.StatusInternalServerError, w, err)
		return
	}

	patientName := med.PatientID
	if patient, perr := m.ADB.FindByRoleID(r.Context(), "patientID", med.PatientID); perr == nil {
		patientName = patient.FullName
	} else {
		zap.S().With(perr).Warnw("failed to resolve patient name for notification",
			"patientId", med.PatientID)
	}

	notification := &models.Notification{
		Type:         models.NotificationTypeMedicationTaken,
		PatientID:    med.PatientID,
		PatientName:  patientName,
		MedicationID: med.ID.Hex(),
		ScheduleID:   scheduleID,
		Read:         false,
		Message:      fmt.Sprintf("%s has taken their %s (%s)", patientName, med.Name, med.Dosage),
	}

	if err := m.NDB.Insert(r.Context(), notification); err != nil {
		config.ErrorStatus(models.ErrNotificationWrite.Error(), http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toMedicationResponse(*med)); err != nil {
		zap.S().With(err).Error("failed to encode mark-taken response")
	}
}

// DeleteMedicationHandler removes a medication document
func (m Medication) DeleteMedicationHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	medID := mux.Vars(r)["medication_id"]

	err := m.DB.Delete(r.Context(), medID)
	if errors.Is(err, models.ErrNoMatch) {
		config.ErrorStatus("medication not found", http.StatusNotFound, w, err)
		return
	}
	if err != nil {
		config.ErrorStatus("failed to delete medication", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"deleted": true}`))
}
