package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationTypeMedicationTaken is emitted when a patient marks a dose taken
const NotificationTypeMedicationTaken = "medication_taken"

// Notification holds the structure for the notifications collection in mongo
type Notification struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Type         string             `json:"type" bson:"type"`
	PatientID    string             `json:"patientId" bson:"patientId"`
	PatientName  string             `json:"patientName" bson:"patientName"`
	MedicationID string             `json:"medicationId" bson:"medicationId"`
	ScheduleID   string             `json:"scheduleId" bson:"scheduleId"`
	Timestamp    primitive.DateTime `json:"timestamp" bson:"timestamp"`
	Read         bool               `json:"read" bson:"read"`
	Message      string             `json:"message" bson:"message"`
}
