// Package dao is the data access object for portfolio projects.
package dao

import (
	"context"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/satindersinghsall/portfolio-api/internal/web/project/model"
	"github.com/satindersinghsall/portfolio-api/library/db/mongo"
)

const colProjects = "projects"

// defaultSort is the fixed multi-key listing order: featured first, then
// manual priority, then drag-and-drop position, then newest.
var defaultSort = bson.D{
	{Key: "featured", Value: -1},
	{Key: "priority", Value: -1},
	{Key: "order", Value: 1},
	{Key: "created_at", Value: -1},
}

// Project dao type
type Project struct {
	logger logSDK.Logger
	db     mongo.DB
}

// New create new dao
func New(logger logSDK.Logger, db mongo.DB) *Project {
	return &Project{
		logger: logger,
		db:     db,
	}
}

// GetProjectsCol get projects collection
func (d *Project) GetProjectsCol() *mongoLib.Collection {
	return d.db.GetCol(colProjects)
}

// ListAll returns every project in the fixed default order.
func (d *Project) ListAll(ctx context.Context) ([]*model.Project, error) {
	cur, err := d.GetProjectsCol().Find(ctx, bson.D{},
		options.Find().SetSort(defaultSort))
	if err != nil {
		return nil, errors.Wrap(err, "find projects")
	}
	defer cur.Close(ctx) //nolint:errcheck

	projects := []*model.Project{}
	if err = cur.All(ctx, &projects); err != nil {
		return nil, errors.Wrap(err, "load projects")
	}

	return projects, nil
}

// ListTop returns at most limit projects matching filter, sorted by sort.
func (d *Project) ListTop(ctx context.Context,
	filter bson.D, sort bson.D, limit int64) ([]*model.Project, error) {
	cur, err := d.GetProjectsCol().Find(ctx, filter,
		options.Find().SetSort(sort),
		options.Find().SetLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "find top projects")
	}
	defer cur.Close(ctx) //nolint:errcheck

	projects := []*model.Project{}
	if err = cur.All(ctx, &projects); err != nil {
		return nil, errors.Wrap(err, "load top projects")
	}

	return projects, nil
}

// GetByID loads a project by id.
func (d *Project) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Project, error) {
	p := new(model.Project)
	if err := d.GetProjectsCol().
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(p); err != nil {
		return nil, errors.Wrapf(err, "find project %q", id.Hex())
	}

	return p, nil
}

// MaxOrder returns the highest order value, or -1 when the collection is
// empty so the first project lands at order 0.
func (d *Project) MaxOrder(ctx context.Context) (int64, error) {
	p := new(model.Project)
	err := d.GetProjectsCol().
		FindOne(ctx, bson.D{},
			options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}})).
		Decode(p)
	if err != nil {
		if mongo.NotFound(err) {
			return -1, nil
		}

		return 0, errors.Wrap(err, "find max order")
	}

	return p.Order, nil
}

// Insert stores a new project.
func (d *Project) Insert(ctx context.Context, p *model.Project) error {
	if _, err := d.GetProjectsCol().InsertOne(ctx, p); err != nil {
		return errors.Wrapf(err, "insert project %q", p.Title)
	}

	return nil
}

// Update applies set to the project and returns the updated document.
func (d *Project) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Project, error) {
	p := new(model.Project)
	if err := d.GetProjectsCol().
		FindOneAndUpdate(ctx,
			bson.D{{Key: "_id", Value: id}},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(p); err != nil {
		return nil, errors.Wrapf(err, "update project %q", id.Hex())
	}

	return p, nil
}

// Delete removes a project by id, reporting whether a document was removed.
func (d *Project) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := d.GetProjectsCol().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, errors.Wrapf(err, "delete project %q", id.Hex())
	}

	return result.DeletedCount > 0, nil
}

// IncrementCounter atomically bumps the named counter field.
func (d *Project) IncrementCounter(ctx context.Context, id primitive.ObjectID, field string) error {
	result, err := d.GetProjectsCol().UpdateByID(ctx, id,
		bson.M{"$inc": bson.M{field: 1}})
	if err != nil {
		return errors.Wrapf(err, "increment %s for %q", field, id.Hex())
	}
	if result.MatchedCount == 0 {
		return errors.Wrap(mongoLib.ErrNoDocuments, "project not found")
	}

	return nil
}

// ApplyOrder writes the given dense positions in one unordered bulk write.
// Best-effort: the batch is not transactional, a crash mid-write can leave a
// partially renumbered ordering.
func (d *Project) ApplyOrder(ctx context.Context, orders map[primitive.ObjectID]int64) error {
	if len(orders) == 0 {
		return nil
	}

	writes := make([]mongoLib.WriteModel, 0, len(orders))
	for id, position := range orders {
		writes = append(writes, mongoLib.NewUpdateOneModel().
			SetFilter(bson.D{{Key: "_id", Value: id}}).
			SetUpdate(bson.M{"$set": bson.M{"order": position}}))
	}

	if _, err := d.GetProjectsCol().
		BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false)); err != nil {
		return errors.Wrap(err, "bulk write order")
	}

	return nil
}

// Count returns the number of projects.
func (d *Project) Count(ctx context.Context) (int64, error) {
	n, err := d.GetProjectsCol().CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errors.Wrap(err, "count projects")
	}

	return n, nil
}
