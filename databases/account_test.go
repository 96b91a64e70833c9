package databases_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medremind/med-reminder-api/config"
	"github.com/medremind/med-reminder-api/databases"
	"github.com/medremind/med-reminder-api/databases/mocks"
	"github.com/medremind/med-reminder-api/models"
)

func TestNewAccountDatabase(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	conf := config.New()

	dbClient, err := databases.NewClient(conf)
	assert.NoError(t, err)

	db := databases.NewDatabase(conf, dbClient)

	accountDB := databases.NewAccountDatabase(db)

	assert.NotEmpty(t, accountDB)
}

func TestAccountDatabase_FindByID(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperErr databases.SingleResultHelper
	var srHelperNoDoc databases.SingleResultHelper
	var srHelperCorrect databases.SingleResultHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperErr = &mocks.SingleResultHelper{}
	srHelperNoDoc = &mocks.SingleResultHelper{}
	srHelperCorrect = &mocks.SingleResultHelper{}

	srHelperErr.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(errors.New("mocked-error"))

	srHelperNoDoc.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(mongo.ErrNoDocuments)

	srHelperCorrect.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Account)
		(*arg).ID = "PAT-ABC123"
		(*arg).Role = models.RolePatient
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"_id": "error"}).
		Return(srHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"_id": "missing"}).
		Return(srHelperNoDoc)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"_id": "PAT-ABC123"}).
		Return(srHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "users").Return(collectionHelper)

	accountDba := databases.NewAccountDatabase(dbHelper)

	account, err := accountDba.FindByID(context.Background(), "error")
	assert.Empty(t, account)
	assert.EqualError(t, err, "mocked-error")

	account, err = accountDba.FindByID(context.Background(), "missing")
	assert.Empty(t, account)
	assert.ErrorIs(t, err, models.ErrNoMatch)

	account, err = accountDba.FindByID(context.Background(), "PAT-ABC123")
	assert.NoError(t, err)
	assert.Equal(t, "PAT-ABC123", account.ID)
	assert.Equal(t, models.RolePatient, account.Role)
}

func TestAccountDatabase_FindByEmail(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var cursorHelperEmpty databases.CursorHelper
	var cursorHelperCorrect databases.CursorHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	cursorHelperEmpty = &mocks.CursorHelper{}
	cursorHelperCorrect = &mocks.CursorHelper{}

	cursorHelperEmpty.(*mocks.CursorHelper).
		On("All", mock.Anything, mock.Anything).
		Return(nil)

	cursorHelperCorrect.(*mocks.CursorHelper).
		On("All", mock.Anything, mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(1).(*[]models.Account)
		*arg = []models.Account{
			{ID: "GAR-XYZ789", Role: models.RoleGuardian, Email: "guardian@example.com"},
			{ID: "GAR-DUPLIC", Role: models.RoleGuardian, Email: "guardian@example.com"},
		}
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.M{"email": "nobody@example.com"}).
		Return(cursorHelperEmpty, nil)

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.M{"email": "guardian@example.com"}).
		Return(cursorHelperCorrect, nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "users").Return(collectionHelper)

	accountDba := databases.NewAccountDatabase(dbHelper)

	account, err := accountDba.FindByEmail(context.Background(), "nobody@example.com")
	assert.Empty(t, account)
	assert.ErrorIs(t, err, models.ErrNoMatch)

	// first match wins when emails collide
	account, err = accountDba.FindByEmail(context.Background(), "guardian@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "GAR-XYZ789", account.ID)
}

func TestAccountDatabase_FindByRoleID(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var cursorHelper databases.CursorHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	cursorHelper = &mocks.CursorHelper{}

	cursorHelper.(*mocks.CursorHelper).
		On("All", mock.Anything, mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(1).(*[]models.Account)
		*arg = []models.Account{{ID: "DOC-AAA111", Role: models.RoleDoctor}}
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.M{"doctorID": "DOC-AAA111"}).
		Return(cursorHelper, nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "users").Return(collectionHelper)

	accountDba := databases.NewAccountDatabase(dbHelper)

	account, err := accountDba.FindByRoleID(context.Background(), "doctorID", "DOC-AAA111")
	assert.NoError(t, err)
	assert.Equal(t, "DOC-AAA111", account.ID)
}

func TestAccountDatabase_InsertStampsCreatedAt(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("InsertOne", mock.Anything, mock.Anything).
		Return("PAT-ABC123", nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "users").Return(collectionHelper)

	accountDba := databases.NewAccountDatabase(dbHelper)

	account := &models.Account{ID: "PAT-ABC123", Role: models.RolePatient}
	err := accountDba.Insert(context.Background(), account)
	assert.NoError(t, err)
	assert.NotNil(t, account.CreatedAt)
}
