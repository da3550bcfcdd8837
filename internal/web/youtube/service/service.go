// Package service is the service layer of YouTube videos.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/satindersinghsall/portfolio-api/internal/web/youtube/dao"
	"github.com/satindersinghsall/portfolio-api/internal/web/youtube/dto"
	"github.com/satindersinghsall/portfolio-api/internal/web/youtube/model"
	"github.com/satindersinghsall/portfolio-api/library/db/mongo"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

// YouTube video service
type YouTube struct {
	logger logSDK.Logger
	dao    *dao.YouTube
}

// New new youtube service
func New(logger logSDK.Logger, dao *dao.YouTube) *YouTube {
	return &YouTube{
		logger: logger,
		dao:    dao,
	}
}

// List returns videos matching the optional status/tag filter.
func (s *YouTube) List(ctx context.Context, filter dto.VideoFilter) ([]*model.Video, error) {
	query := bson.D{}
	if filter.Status != "" {
		query = append(query, bson.E{Key: "status", Value: filter.Status})
	}
	if filter.Tag != "" {
		query = append(query, bson.E{Key: "tags", Value: filter.Tag})
	}

	return s.dao.Find(ctx, query)
}

// GetByID loads a single video by its hex id.
func (s *YouTube) GetByID(ctx context.Context, id string) (*model.Video, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrap(httperr.ErrNotFound, "invalid video id")
	}

	video, err := s.dao.GetByID(ctx, oid)
	if err != nil {
		if mongo.NotFound(err) {
			return nil, errors.Wrap(httperr.ErrNotFound, "video not found")
		}

		return nil, errors.WithStack(err)
	}

	return video, nil
}

// Create validates the payload and stores the video. Publishing at creation
// stamps publishedAt immediately.
func (s *YouTube) Create(ctx context.Context, input *dto.VideoInput) (*model.Video, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.Wrap(httperr.ErrValidation, "title is required")
	}
	videoURL := strings.TrimSpace(input.VideoURL)
	if videoURL == "" {
		return nil, errors.Wrap(httperr.ErrValidation, "videoUrl is required")
	}

	now := gutils.Clock.GetUTCNow()
	video := &model.Video{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: input.Description,
		VideoURL:    videoURL,
		Thumbnail:   input.Thumbnail,
		Tags:        input.Tags,
		Author:      input.Author,
		Status:      normalizeStatus(input.Status),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if video.Author == "" {
		video.Author = model.DefaultAuthor
	}
	if video.Status == model.StatusPublished {
		video.PublishedAt = &now
	}

	if err := s.dao.Insert(ctx, video); err != nil {
		return nil, errors.Wrap(err, "insert video")
	}

	s.logger.Info("created video", zap.String("title", video.Title))
	return video, nil
}

// Update applies a partial update. The first transition to published stamps
// publishedAt; later updates never move it.
func (s *YouTube) Update(ctx context.Context, id string, update *dto.VideoUpdate) (*model.Video, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrap(httperr.ErrNotFound, "invalid video id")
	}

	stored, err := s.dao.GetByID(ctx, oid)
	if err != nil {
		if mongo.NotFound(err) {
			return nil, errors.Wrap(httperr.ErrNotFound, "video not found")
		}

		return nil, errors.WithStack(err)
	}

	set, err := buildVideoUpdate(update, stored, gutils.Clock.GetUTCNow())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	video, err := s.dao.Update(ctx, oid, set)
	if err != nil {
		if mongo.NotFound(err) {
			return nil, errors.Wrap(httperr.ErrNotFound, "video not found")
		}

		return nil, errors.WithStack(err)
	}

	return video, nil
}

// Delete removes a video by id.
func (s *YouTube) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrap(httperr.ErrNotFound, "invalid video id")
	}

	deleted, err := s.dao.Delete(ctx, oid)
	if err != nil {
		return errors.WithStack(err)
	}
	if !deleted {
		return errors.Wrap(httperr.ErrNotFound, "video not found")
	}

	return nil
}

// Count returns the number of videos for the dashboard aggregate.
func (s *YouTube) Count(ctx context.Context) (int64, error) {
	return s.dao.Count(ctx)
}

// buildVideoUpdate translates the supplied fields into a $set document.
// Required strings are stored trimmed; the first transition to published
// stamps published_at, later updates never move it.
func buildVideoUpdate(update *dto.VideoUpdate, stored *model.Video, now time.Time) (bson.M, error) {
	set := bson.M{"updated_at": now}
	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, errors.Wrap(httperr.ErrValidation, "title cannot be blank")
		}
		set["title"] = title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.VideoURL != nil {
		videoURL := strings.TrimSpace(*update.VideoURL)
		if videoURL == "" {
			return nil, errors.Wrap(httperr.ErrValidation, "videoUrl cannot be blank")
		}
		set["video_url"] = videoURL
	}
	if update.Thumbnail != nil {
		set["thumbnail"] = *update.Thumbnail
	}
	if update.Tags != nil {
		set["tags"] = *update.Tags
	}
	if update.Author != nil {
		author := *update.Author
		if author == "" {
			author = model.DefaultAuthor
		}
		set["author"] = author
	}
	if update.Status != nil {
		status := normalizeStatus(*update.Status)
		set["status"] = status
		if status == model.StatusPublished && stored.PublishedAt == nil {
			set["published_at"] = now
		}
	}

	return set, nil
}

// normalizeStatus keeps only the known states, defaulting to draft.
func normalizeStatus(raw string) model.VideoStatus {
	if raw == string(model.StatusPublished) {
		return model.StatusPublished
	}

	return model.StatusDraft
}
