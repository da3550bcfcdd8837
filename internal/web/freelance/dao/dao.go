// Package dao is the data access object for freelance projects.
package dao

import (
	"context"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/satindersinghsall/portfolio-api/internal/web/freelance/model"
	"github.com/satindersinghsall/portfolio-api/library/db/mongo"
)

const colFreelance = "freelance_projects"

// Freelance dao type
type Freelance struct {
	logger logSDK.Logger
	db     mongo.DB
}

// New create new dao
func New(logger logSDK.Logger, db mongo.DB) *Freelance {
	return &Freelance{
		logger: logger,
		db:     db,
	}
}

// GetFreelanceCol get freelance projects collection
func (d *Freelance) GetFreelanceCol() *mongoLib.Collection {
	return d.db.GetCol(colFreelance)
}

// ListAll returns every freelance project, featured first then newest.
func (d *Freelance) ListAll(ctx context.Context) ([]*model.FreelanceProject, error) {
	cur, err := d.GetFreelanceCol().Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{
			{Key: "featured", Value: -1},
			{Key: "created_at", Value: -1},
		}))
	if err != nil {
		return nil, errors.Wrap(err, "find freelance projects")
	}
	defer cur.Close(ctx) //nolint:errcheck

	projects := []*model.FreelanceProject{}
	if err = cur.All(ctx, &projects); err != nil {
		return nil, errors.Wrap(err, "load freelance projects")
	}

	return projects, nil
}

// GetByID loads a freelance project by id.
func (d *Freelance) GetByID(ctx context.Context, id primitive.ObjectID) (*model.FreelanceProject, error) {
	p := new(model.FreelanceProject)
	if err := d.GetFreelanceCol().
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(p); err != nil {
		return nil, errors.Wrapf(err, "find freelance project %q", id.Hex())
	}

	return p, nil
}

// Insert stores a new freelance project.
func (d *Freelance) Insert(ctx context.Context, p *model.FreelanceProject) error {
	if _, err := d.GetFreelanceCol().InsertOne(ctx, p); err != nil {
		return errors.Wrapf(err, "insert freelance project %q", p.Title)
	}

	return nil
}

// Update applies set to the freelance project and returns the updated document.
func (d *Freelance) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.FreelanceProject, error) {
	p := new(model.FreelanceProject)
	if err := d.GetFreelanceCol().
		FindOneAndUpdate(ctx,
			bson.D{{Key: "_id", Value: id}},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(p); err != nil {
		return nil, errors.Wrapf(err, "update freelance project %q", id.Hex())
	}

	return p, nil
}

// Delete removes a freelance project by id, reporting whether a document was
// removed.
func (d *Freelance) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := d.GetFreelanceCol().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, errors.Wrapf(err, "delete freelance project %q", id.Hex())
	}

	return result.DeletedCount > 0, nil
}

// Count returns the number of freelance projects.
func (d *Freelance) Count(ctx context.Context) (int64, error) {
	n, err := d.GetFreelanceCol().CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errors.Wrap(err, "count freelance projects")
	}

	return n, nil
}
