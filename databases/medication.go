package databases

// go generate: mockery --name MedicationDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medremind/med-reminder-api/models"
)

const medicationsCollection = "medications"

// MedicationDatabase defines the interface for medication database operations
type MedicationDatabase interface {
	List(ctx context.Context) ([]models.Medication, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Medication, error)
	GetByID(ctx context.Context, id string) (*models.Medication, error)
	Create(ctx context.Context, medication *models.Medication) error
	Update(ctx context.Context, id string, medication *models.Medication) error
	MarkDoseTaken(ctx context.Context, id, scheduleID string) (*models.Medication, error)
	MarkDoseMissed(ctx context.Context, id, scheduleID string) error
	StampSupplyAlert(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Watch(ctx context.Context) (ChangeStreamHelper, error)
}

type medicationDatabase struct {
	db DatabaseHelper
}

// NewMedicationDatabase creates a new medication database instance
func NewMedicationDatabase(db DatabaseHelper) MedicationDatabase {
	return &medicationDatabase{
		db: db,
	}
}

func (m *medicationDatabase) List(ctx context.Context) ([]models.Medication, error) {
	return m.list(ctx, bson.M{})
}

// ListByPatient retrieves the medications for a patient, newest first
func (m *medicationDatabase) ListByPatient(ctx context.Context, patientID string) ([]models.Medication, error) {
	return m.list(ctx, bson.M{"patientId": patientID})
}

func (m *medicationDatabase) list(ctx context.Context, filter bson.M) ([]models.Medication, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := m.db.Collection(medicationsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var medications []models.Medication
	if err := cursor.All(ctx, &medications); err != nil {
		return nil, err
	}
	return medications, nil
}

func (m *medicationDatabase) GetByID(ctx context.Context, id string) (*models.Medication, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	medication := &models.Medication{}
	err = m.db.Collection(medicationsCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&medication)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNoMatch
	}
	if err != nil {
		return nil, err
	}
	return medication, nil
}

func (m *medicationDatabase) Create(ctx context.Context, medication *models.Medication) error {
	now := primitive.NewDateTimeFromTime(time.Now())
	medication.CreatedAt = now
	medication.LastUpdated = now

	if medication.ID.IsZero() {
		medication.ID = primitive.NewObjectID()
	}
	if medication.Schedules == nil {
		medication.Schedules = map[string]models.Schedule{}
	}

	_, err := m.db.Collection(medicationsCollection).InsertOne(ctx, medication)
	return err
}

func (m *medicationDatabase) Update(ctx context.Context, id string, medication *models.Medication) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	medication.LastUpdated = primitive.NewDateTimeFromTime(time.Now())

	update := bson.M{
		"$set": bson.M{
			"name":        medication.Name,
			"dosage":      medication.Dosage,
			"frequency":   medication.Frequency,
			"supplyLeft":  medication.SupplyLeft,
			"patientId":   medication.PatientID,
			"schedules":   medication.Schedules,
			"lastUpdated": medication.LastUpdated,
		},
	}

	res, err := m.db.Collection(medicationsCollection).UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNoMatch
	}
	return nil
}

// MarkDoseTaken flips the targeted slot to taken and stamps takenAt and the
// record's lastUpdated. There is no transition guard: marking an already
// taken slot overwrites takenAt and the status stays taken. supplyLeft is
// not touched here. Returns the updated record.
func (m *medicationDatabase) MarkDoseTaken(ctx context.Context, id, scheduleID string) (*models.Medication, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	update := bson.M{
		"$set": bson.M{
			"schedules." + scheduleID + ".status":  models.StatusTaken,
			"schedules." + scheduleID + ".takenAt": now,
			"lastUpdated":                          now,
		},
	}

	res, err := m.db.Collection(medicationsCollection).UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, models.ErrNoMatch
	}
	return m.GetByID(ctx, id)
}

// MarkDoseMissed flips a still-pending slot to missed; slots already taken
// are left alone by the filter.
func (m *medicationDatabase) MarkDoseMissed(ctx context.Context, id, scheduleID string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	filter := bson.M{
		"_id": objectID,
		"schedules." + scheduleID + ".status": models.StatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"schedules." + scheduleID + ".status": models.StatusMissed,
			"lastUpdated":                         primitive.NewDateTimeFromTime(time.Now()),
		},
	}

	_, err = m.db.Collection(medicationsCollection).UpdateOne(ctx, filter, update)
	return err
}

func (m *medicationDatabase) StampSupplyAlert(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"lastSupplyAlertAt": primitive.NewDateTimeFromTime(time.Now()),
		},
	}

	_, err = m.db.Collection(medicationsCollection).UpdateOne(ctx, bson.M{"_id": objectID}, update)
	return err
}

func (m *medicationDatabase) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	deleted, err := m.db.Collection(medicationsCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return models.ErrNoMatch
	}
	return nil
}

// Watch opens a change stream over the whole collection. Callers re-query
// their patient's list on every event; the stream is the store's native
// change-feed order, nothing more.
func (m *medicationDatabase) Watch(ctx context.Context) (ChangeStreamHelper, error) {
	return m.db.Collection(medicationsCollection).Watch(ctx, mongo.Pipeline{})
}
