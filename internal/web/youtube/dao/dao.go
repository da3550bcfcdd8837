// Package dao is the data access object for YouTube videos.
package dao

import (
	"context"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/satindersinghsall/portfolio-api/internal/web/youtube/model"
	"github.com/satindersinghsall/portfolio-api/library/db/mongo"
)

const colVideos = "youtube_videos"

// YouTube dao type
type YouTube struct {
	logger logSDK.Logger
	db     mongo.DB
}

// New create new dao
func New(logger logSDK.Logger, db mongo.DB) *YouTube {
	return &YouTube{
		logger: logger,
		db:     db,
	}
}

// GetVideosCol get videos collection
func (d *YouTube) GetVideosCol() *mongoLib.Collection {
	return d.db.GetCol(colVideos)
}

// Find returns videos matching filter, newest first.
func (d *YouTube) Find(ctx context.Context, filter bson.D) ([]*model.Video, error) {
	cur, err := d.GetVideosCol().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "find videos")
	}
	defer cur.Close(ctx) //nolint:errcheck

	videos := []*model.Video{}
	if err = cur.All(ctx, &videos); err != nil {
		return nil, errors.Wrap(err, "load videos")
	}

	return videos, nil
}

// GetByID loads a video by id.
func (d *YouTube) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Video, error) {
	v := new(model.Video)
	if err := d.GetVideosCol().
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(v); err != nil {
		return nil, errors.Wrapf(err, "find video %q", id.Hex())
	}

	return v, nil
}

// Insert stores a new video.
func (d *YouTube) Insert(ctx context.Context, v *model.Video) error {
	if _, err := d.GetVideosCol().InsertOne(ctx, v); err != nil {
		return errors.Wrapf(err, "insert video %q", v.Title)
	}

	return nil
}

// Update applies set to the video and returns the updated document.
func (d *YouTube) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Video, error) {
	v := new(model.Video)
	if err := d.GetVideosCol().
		FindOneAndUpdate(ctx,
			bson.D{{Key: "_id", Value: id}},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(v); err != nil {
		return nil, errors.Wrapf(err, "update video %q", id.Hex())
	}

	return v, nil
}

// Delete removes a video by id, reporting whether a document was removed.
func (d *YouTube) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := d.GetVideosCol().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, errors.Wrapf(err, "delete video %q", id.Hex())
	}

	return result.DeletedCount > 0, nil
}

// Count returns the number of videos.
func (d *YouTube) Count(ctx context.Context) (int64, error) {
	n, err := d.GetVideosCol().CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errors.Wrap(err, "count videos")
	}

	return n, nil
}
