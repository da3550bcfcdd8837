// Package service is the service layer of contact messages.
package service

import (
	"context"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/satindersinghsall/portfolio-api/internal/web/contact/dao"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

// Contact message service
type Contact struct {
	logger logSDK.Logger
	dao    *dao.Contact
}

// New new contact service
func New(logger logSDK.Logger, dao *dao.Contact) *Contact {
	return &Contact{
		logger: logger,
		dao:    dao,
	}
}

// Submit persists the visitor payload as-is, only stamping id and timestamp.
// Reserved keys in the payload are dropped so a submitter cannot forge them.
func (s *Contact) Submit(ctx context.Context, payload map[string]any) error {
	if len(payload) == 0 {
		return errors.Wrap(httperr.ErrValidation, "message body is required")
	}

	doc := bson.M{}
	for k, v := range payload {
		if k == "_id" || k == "created_at" {
			continue
		}
		doc[k] = v
	}
	if len(doc) == 0 {
		return errors.Wrap(httperr.ErrValidation, "message body is required")
	}

	doc["_id"] = primitive.NewObjectID()
	doc["created_at"] = gutils.Clock.GetUTCNow()

	if err := s.dao.Insert(ctx, doc); err != nil {
		return errors.WithStack(err)
	}

	s.logger.Info("received contact message", zap.Int("fields", len(doc)))
	return nil
}

// List returns all messages, newest first.
func (s *Contact) List(ctx context.Context) ([]bson.M, error) {
	return s.dao.ListAll(ctx)
}

// Delete removes a message by id.
func (s *Contact) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrap(httperr.ErrNotFound, "invalid message id")
	}

	deleted, err := s.dao.Delete(ctx, oid)
	if err != nil {
		return errors.WithStack(err)
	}
	if !deleted {
		return errors.Wrap(httperr.ErrNotFound, "message not found")
	}

	return nil
}

// Count returns the number of messages for the dashboard aggregate.
func (s *Contact) Count(ctx context.Context) (int64, error) {
	return s.dao.Count(ctx)
}
