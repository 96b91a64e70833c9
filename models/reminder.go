package models

// Reminder is a local reminder record kept in the single-slot reminder store.
// It is a separate entity from Medication and is never synchronized with the
// remote collections. PatientID and Patient coexist because the two producing
// screens historically disagreed on the field name.
type Reminder struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId,omitempty"`
	Patient   string `json:"patient,omitempty"`
	Medicine  string `json:"medicine"`
	Dosage    string `json:"dosage"`
	Time      string `json:"time"`
	Supply    string `json:"supply,omitempty"`
	Taken     bool   `json:"taken"`
	DateAdded string `json:"dateAdded"`
}
