// Package dao is the data access object for contact messages.
//
// Contact messages are free-form documents persisted exactly as submitted,
// so the dao works on bson.M instead of a fixed model struct.
package dao

import (
	"context"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/satindersinghsall/portfolio-api/library/db/mongo"
)

const colMessages = "contact_messages"

// Contact dao type
type Contact struct {
	logger logSDK.Logger
	db     mongo.DB
}

// New create new dao
func New(logger logSDK.Logger, db mongo.DB) *Contact {
	return &Contact{
		logger: logger,
		db:     db,
	}
}

// GetMessagesCol get contact messages collection
func (d *Contact) GetMessagesCol() *mongoLib.Collection {
	return d.db.GetCol(colMessages)
}

// Insert stores a submitted message document.
func (d *Contact) Insert(ctx context.Context, doc bson.M) error {
	if _, err := d.GetMessagesCol().InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "insert contact message")
	}

	return nil
}

// ListAll returns every message, newest first.
func (d *Contact) ListAll(ctx context.Context) ([]bson.M, error) {
	cur, err := d.GetMessagesCol().Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "find contact messages")
	}
	defer cur.Close(ctx) //nolint:errcheck

	messages := []bson.M{}
	if err = cur.All(ctx, &messages); err != nil {
		return nil, errors.Wrap(err, "load contact messages")
	}

	return messages, nil
}

// Delete removes a message by id, reporting whether a document was removed.
func (d *Contact) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := d.GetMessagesCol().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, errors.Wrapf(err, "delete contact message %q", id.Hex())
	}

	return result.DeletedCount > 0, nil
}

// Count returns the number of messages.
func (d *Contact) Count(ctx context.Context) (int64, error) {
	n, err := d.GetMessagesCol().CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errors.Wrap(err, "count contact messages")
	}

	return n, nil
}
