// Package dao is the data access object for admin accounts.
package dao

import (
	"context"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"go.mongodb.org/mongo-driver/bson"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/satindersinghsall/portfolio-api/internal/web/account/model"
	"github.com/satindersinghsall/portfolio-api/library/db/mongo"
)

const colUsers = "users"

// Account dao type
type Account struct {
	logger logSDK.Logger
	db     mongo.DB
}

// New create new dao
func New(logger logSDK.Logger, db mongo.DB) *Account {
	return &Account{
		logger: logger,
		db:     db,
	}
}

// GetUsersCol get users collection
func (d *Account) GetUsersCol() *mongoLib.Collection {
	return d.db.GetCol(colUsers)
}

// SetupIndexes creates the unique email index.
func (d *Account) SetupIndexes(ctx context.Context) error {
	if _, err := d.GetUsersCol().Indexes().CreateOne(ctx, mongoLib.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return errors.Wrap(err, "create index for email")
	}

	return nil
}

// GetByEmail loads a user by email.
func (d *Account) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u := new(model.User)
	if err := d.GetUsersCol().
		FindOne(ctx, bson.D{{Key: "email", Value: email}}).
		Decode(u); err != nil {
		return nil, errors.Wrapf(err, "find user %q", email)
	}

	return u, nil
}

// Insert stores a new user document.
func (d *Account) Insert(ctx context.Context, u *model.User) error {
	if _, err := d.GetUsersCol().InsertOne(ctx, u); err != nil {
		return errors.Wrapf(err, "insert user %q", u.Email)
	}

	return nil
}
