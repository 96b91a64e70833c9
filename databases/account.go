package databases

// go generate: mockery --name AccountDatabase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medremind/med-reminder-api/models"
)

const accountsCollection = "users"

// AccountDatabase contains the methods to use with the account database.
// Accounts are created once at registration and never updated or deleted.
type AccountDatabase interface {
	Insert(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id string) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByRoleID(ctx context.Context, roleIDField, id string) (*models.Account, error)
}

type accountDatabase struct {
	db DatabaseHelper
}

// NewAccountDatabase initializes a new instance of account database with the provided db connection
func NewAccountDatabase(db DatabaseHelper) AccountDatabase {
	return &accountDatabase{
		db: db,
	}
}

func (a *accountDatabase) Insert(ctx context.Context, account *models.Account) error {
	if account.CreatedAt == nil {
		account.CreatedAt = time.Now().UTC()
	}
	_, err := a.db.Collection(accountsCollection).InsertOne(ctx, account)
	return err
}

func (a *accountDatabase) FindByID(ctx context.Context, id string) (*models.Account, error) {
	account := &models.Account{}
	err := a.db.Collection(accountsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNoMatch
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

// FindByEmail returns the first account matching the email. Email is a login
// key but the system never guaranteed uniqueness, so first match wins.
func (a *accountDatabase) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return a.findFirst(ctx, bson.M{"email": email})
}

// FindByRoleID resolves an account by a role-specific ID field, e.g.
// doctorID for a patient's assigned doctor.
func (a *accountDatabase) FindByRoleID(ctx context.Context, roleIDField, id string) (*models.Account, error) {
	return a.findFirst(ctx, bson.M{roleIDField: id})
}

func (a *accountDatabase) findFirst(ctx context.Context, filter bson.M) (*models.Account, error) {
	cursor, err := a.db.Collection(accountsCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var accounts []models.Account
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, models.ErrNoMatch
	}
	return &accounts[0], nil
}
