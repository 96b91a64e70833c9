package databases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medremind/med-reminder-api/databases"
	"github.com/medremind/med-reminder-api/databases/mocks"
	"github.com/medremind/med-reminder-api/models"
)

func TestMedicationDatabase_MarkDoseTaken(t *testing.T) {
	medID := primitive.NewObjectID()

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelper databases.SingleResultHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelper = &mocks.SingleResultHelper{}

	var capturedUpdate bson.M
	collectionHelper.(*mocks.CollectionHelper).
		On("UpdateOne", mock.Anything, bson.M{"_id": medID}, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil).
		Run(func(args mock.Arguments) {
			capturedUpdate = args.Get(2).(bson.M)
		})

	srHelper.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Medication)
		(*arg).ID = medID
		(*arg).Name = "Aspirin"
		(*arg).Schedules = map[string]models.Schedule{
			"slot_0": {Time: "08:00", Status: models.StatusTaken},
		}
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", mock.Anything, bson.M{"_id": medID}).
		Return(srHelper)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "medications").Return(collectionHelper)

	medDba := databases.NewMedicationDatabase(dbHelper)

	med, err := medDba.MarkDoseTaken(context.Background(), medID.Hex(), "slot_0")
	assert.NoError(t, err)
	assert.Equal(t, medID, med.ID)
	assert.Equal(t, models.StatusTaken, med.Schedules["slot_0"].Status)

	// the update targets only the slot fields and the record stamp
	set := capturedUpdate["$set"].(bson.M)
	assert.Equal(t, models.StatusTaken, set["schedules.slot_0.status"])
	assert.Contains(t, set, "schedules.slot_0.takenAt")
	assert.Contains(t, set, "lastUpdated")
	assert.Len(t, set, 3)
}

func TestMedicationDatabase_MarkDoseTakenNoMatch(t *testing.T) {
	medID := primitive.NewObjectID()

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 0}, nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "medications").Return(collectionHelper)

	medDba := databases.NewMedicationDatabase(dbHelper)

	med, err := medDba.MarkDoseTaken(context.Background(), medID.Hex(), "slot_0")
	assert.Nil(t, med)
	assert.ErrorIs(t, err, models.ErrNoMatch)
}

func TestMedicationDatabase_MarkDoseTakenBadID(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	medDba := databases.NewMedicationDatabase(dbHelper)

	med, err := medDba.MarkDoseTaken(context.Background(), "not-a-hex-id", "slot_0")
	assert.Nil(t, med)
	assert.Error(t, err)
}

func TestMedicationDatabase_MarkDoseMissedFiltersOnPending(t *testing.T) {
	medID := primitive.NewObjectID()

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	var capturedFilter bson.M
	collectionHelper.(*mocks.CollectionHelper).
		On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 0}, nil).
		Run(func(args mock.Arguments) {
			capturedFilter = args.Get(1).(bson.M)
		})

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "medications").Return(collectionHelper)

	medDba := databases.NewMedicationDatabase(dbHelper)

	// a slot already taken simply does not match the filter, no error
	err := medDba.MarkDoseMissed(context.Background(), medID.Hex(), "slot_0")
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, capturedFilter["schedules.slot_0.status"])
}

func TestMedicationDatabase_ListByPatient(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var cursorHelper databases.CursorHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	cursorHelper = &mocks.CursorHelper{}

	cursorHelper.(*mocks.CursorHelper).
		On("All", mock.Anything, mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(1).(*[]models.Medication)
		*arg = []models.Medication{
			{Name: "Aspirin", PatientID: "PAT-ABC123"},
			{Name: "Metformin", PatientID: "PAT-ABC123"},
		}
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", mock.Anything, bson.M{"patientId": "PAT-ABC123"}, mock.Anything).
		Return(cursorHelper, nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "medications").Return(collectionHelper)

	medDba := databases.NewMedicationDatabase(dbHelper)

	meds, err := medDba.ListByPatient(context.Background(), "PAT-ABC123")
	assert.NoError(t, err)
	assert.Len(t, meds, 2)
}

func TestMedicationDatabase_DeleteNoMatch(t *testing.T) {
	medID := primitive.NewObjectID()

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("DeleteOne", mock.Anything, bson.M{"_id": medID}).
		Return(int64(0), nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "medications").Return(collectionHelper)

	medDba := databases.NewMedicationDatabase(dbHelper)

	err := medDba.Delete(context.Background(), medID.Hex())
	assert.ErrorIs(t, err, models.ErrNoMatch)
}
