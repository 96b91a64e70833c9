package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Schedule slot statuses
const (
	StatusPending = "pending"
	StatusTaken   = "taken"
	StatusMissed  = "missed"
)

// Supply level classifications derived from supplyLeft
const (
	SupplyGood     = "Good"
	SupplyLow      = "Low"
	SupplyCritical = "Critical"
)

// Medication holds the structure for the medications collection in mongo
type Medication struct {
	ID                primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	Name              string              `json:"name" bson:"name"`
	Dosage            string              `json:"dosage" bson:"dosage"`
	Frequency         string              `json:"frequency" bson:"frequency"`
	SupplyLeft        int                 `json:"supplyLeft" bson:"supplyLeft"`
	PatientID         string              `json:"patientId" bson:"patientId"`
	Schedules         map[string]Schedule `json:"schedules" bson:"schedules"`
	CreatedAt         primitive.DateTime  `json:"createdAt" bson:"createdAt"`
	LastUpdated       primitive.DateTime  `json:"lastUpdated" bson:"lastUpdated"`
	LastSupplyAlertAt *primitive.DateTime `json:"lastSupplyAlertAt,omitempty" bson:"lastSupplyAlertAt,omitempty"`
}

// Schedule holds one scheduled dose slot inside a medication's schedules map
type Schedule struct {
	Time    string              `json:"time" bson:"time"`
	Status  string              `json:"status" bson:"status"`
	TakenAt *primitive.DateTime `json:"takenAt,omitempty" bson:"takenAt,omitempty"`
}

// SupplyStatus classifies a remaining supply count: more than 10 doses is
// Good, 6-10 is Low, 5 or fewer is Critical.
func SupplyStatus(supplyLeft int) string {
	if supplyLeft > 10 {
		return SupplyGood
	}
	if supplyLeft > 5 {
		return SupplyLow
	}
	return SupplyCritical
}
