// Package dao is the data access object for blog posts.
package dao

import (
	"context"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/satindersinghsall/portfolio-api/internal/web/blog/model"
	"github.com/satindersinghsall/portfolio-api/library/db/mongo"
)

const colPosts = "posts"

// Blog dao type
type Blog struct {
	logger logSDK.Logger
	db     mongo.DB
}

// New create new dao
func New(logger logSDK.Logger, db mongo.DB) *Blog {
	return &Blog{
		logger: logger,
		db:     db,
	}
}

// GetPostsCol get posts collection
func (d *Blog) GetPostsCol() *mongoLib.Collection {
	return d.db.GetCol(colPosts)
}

// SetupIndexes creates the unique slug index.
func (d *Blog) SetupIndexes(ctx context.Context) error {
	if _, err := d.GetPostsCol().Indexes().CreateOne(ctx, mongoLib.IndexModel{
		Keys:    bson.M{"slug": 1},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return errors.Wrap(err, "create index for slug")
	}

	return nil
}

// IsSlugTaken reports whether any post already uses slug.
func (d *Blog) IsSlugTaken(ctx context.Context, slug string) (bool, error) {
	n, err := d.GetPostsCol().CountDocuments(ctx, bson.D{{Key: "slug", Value: slug}})
	if err != nil {
		return false, errors.Wrapf(err, "count slug %q", slug)
	}

	return n != 0, nil
}

// Insert stores a new post.
func (d *Blog) Insert(ctx context.Context, p *model.Post) error {
	if _, err := d.GetPostsCol().InsertOne(ctx, p); err != nil {
		return errors.Wrapf(err, "insert post %q", p.Slug)
	}

	return nil
}

// GetByID loads a post by id.
func (d *Blog) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	p := new(model.Post)
	if err := d.GetPostsCol().
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(p); err != nil {
		return nil, errors.Wrapf(err, "find post %q", id.Hex())
	}

	return p, nil
}

// GetBySlug loads a post by slug.
func (d *Blog) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	p := new(model.Post)
	if err := d.GetPostsCol().
		FindOne(ctx, bson.D{{Key: "slug", Value: slug}}).
		Decode(p); err != nil {
		return nil, errors.Wrapf(err, "find post by slug %q", slug)
	}

	return p, nil
}

// Find returns all posts matching filter in the given order.
func (d *Blog) Find(ctx context.Context, filter bson.D, sort bson.D) ([]*model.Post, error) {
	cur, err := d.GetPostsCol().Find(ctx, filter,
		options.Find().SetSort(sort))
	if err != nil {
		return nil, errors.Wrap(err, "find posts")
	}
	defer cur.Close(ctx) //nolint:errcheck

	posts := []*model.Post{}
	if err = cur.All(ctx, &posts); err != nil {
		return nil, errors.Wrap(err, "load posts")
	}

	return posts, nil
}

// Update applies set to the post and returns the updated document.
func (d *Blog) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Post, error) {
	p := new(model.Post)
	if err := d.GetPostsCol().
		FindOneAndUpdate(ctx,
			bson.D{{Key: "_id", Value: id}},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(p); err != nil {
		return nil, errors.Wrapf(err, "update post %q", id.Hex())
	}

	return p, nil
}

// Delete removes a post by id, reporting whether a document was removed.
func (d *Blog) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := d.GetPostsCol().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, errors.Wrapf(err, "delete post %q", id.Hex())
	}

	return result.DeletedCount > 0, nil
}

// IncrementViews atomically bumps the view counter.
func (d *Blog) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	result, err := d.GetPostsCol().UpdateByID(ctx, id,
		bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return errors.Wrapf(err, "increment views for %q", id.Hex())
	}
	if result.MatchedCount == 0 {
		return errors.Wrap(mongoLib.ErrNoDocuments, "post not found")
	}

	return nil
}

// Count returns the number of posts.
func (d *Blog) Count(ctx context.Context) (int64, error) {
	n, err := d.GetPostsCol().CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errors.Wrap(err, "count posts")
	}

	return n, nil
}
