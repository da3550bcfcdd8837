// Package service is the service layer of portfolio projects.
package service

import (
	"context"
	"strings"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/satindersinghsall/portfolio-api/internal/web/project/dao"
	"github.com/satindersinghsall/portfolio-api/internal/web/project/dto"
	"github.com/satindersinghsall/portfolio-api/internal/web/project/model"
	"github.com/satindersinghsall/portfolio-api/library/db/mongo"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

// topListLimit caps the featured/popular shortcut listings.
const topListLimit = 6

// Project project service
type Project struct {
	logger logSDK.Logger
	dao    *dao.Project
}

// New new project service
func New(logger logSDK.Logger, dao *dao.Project) *Project {
	return &Project{
		logger: logger,
		dao:    dao,
	}
}

// List returns all projects in the fixed default order; no query parameter
// overrides it.
func (s *Project) List(ctx context.Context) ([]*model.Project, error) {
	return s.dao.ListAll(ctx)
}

// TopFeatured returns up to six featured projects.
func (s *Project) TopFeatured(ctx context.Context) ([]*model.Project, error) {
	return s.dao.ListTop(ctx,
		bson.D{{Key: "featured", Value: true}},
		bson.D{{Key: "priority", Value: -1}, {Key: "order", Value: 1}},
		topListLimit)
}

// TopPopular returns up to six projects by view count.
func (s *Project) TopPopular(ctx context.Context) ([]*model.Project, error) {
	return s.dao.ListTop(ctx,
		bson.D{},
		bson.D{{Key: "views", Value: -1}},
		topListLimit)
}

// GetByID loads a single project by its hex id.
func (s *Project) GetByID(ctx context.Context, id string) (*model.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrap(httperr.ErrNotFound, "invalid project id")
	}

	project, err := s.dao.GetByID(ctx, oid)
	if err != nil {
		if mongo.NotFound(err) {
			return nil, errors.Wrap(httperr.ErrNotFound, "project not found")
		}

		return nil, errors.WithStack(err)
	}

	return project, nil
}

// Create validates the payload and stores the project, appending it at the
// end of the manual ordering.
func (s *Project) Create(ctx context.Context, input *dto.ProjectInput) (*model.Project, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.Wrap(httperr.ErrValidation, "title is required")
	}
	if len(input.Technologies) == 0 {
		return nil, errors.Wrap(httperr.ErrValidation, "technologies are required")
	}
	githubLink := strings.TrimSpace(input.GithubLink)
	if githubLink == "" {
		return nil, errors.Wrap(httperr.ErrValidation, "githubLink is required")
	}

	maxOrder, err := s.dao.MaxOrder(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "find append position")
	}

	now := gutils.Clock.GetUTCNow()
	project := &model.Project{
		ID:           primitive.NewObjectID(),
		Title:        title,
		Description:  input.Description,
		Technologies: input.Technologies,
		GithubLink:   githubLink,
		Link:         input.Link,
		Image:        input.Image,
		Featured:     input.Featured,
		Order:        maxOrder + 1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.Priority != nil {
		project.Priority = *input.Priority
	}

	if err = s.dao.Insert(ctx, project); err != nil {
		return nil, errors.Wrap(err, "insert project")
	}

	s.logger.Info("created project", zap.String("title", project.Title))
	return project, nil
}

// Update applies a partial update.
func (s *Project) Update(ctx context.Context, id string, update *dto.ProjectUpdate) (*model.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrap(httperr.ErrNotFound, "invalid project id")
	}

	set := bson.M{"updated_at": gutils.Clock.GetUTCNow()}
	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, errors.Wrap(httperr.ErrValidation, "title cannot be blank")
		}
		set["title"] = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Technologies != nil {
		if len(*update.Technologies) == 0 {
			return nil, errors.Wrap(httperr.ErrValidation, "technologies cannot be empty")
		}
		set["technologies"] = *update.Technologies
	}
	if update.GithubLink != nil {
		githubLink := strings.TrimSpace(*update.GithubLink)
		if githubLink == "" {
			return nil, errors.Wrap(httperr.ErrValidation, "githubLink cannot be blank")
		}
		set["github_link"] = githubLink
	}
	if update.Link != nil {
		set["link"] = *update.Link
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.Featured != nil {
		set["featured"] = *update.Featured
	}
	if update.Priority != nil {
		set["priority"] = *update.Priority
	}
	if update.Order != nil {
		set["order"] = *update.Order
	}

	project, err := s.dao.Update(ctx, oid, set)
	if err != nil {
		if mongo.NotFound(err) {
			return nil, errors.Wrap(httperr.ErrNotFound, "project not found")
		}

		return nil, errors.WithStack(err)
	}

	return project, nil
}

// Delete removes a project by id.
func (s *Project) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrap(httperr.ErrNotFound, "invalid project id")
	}

	deleted, err := s.dao.Delete(ctx, oid)
	if err != nil {
		return errors.WithStack(err)
	}
	if !deleted {
		return errors.Wrap(httperr.ErrNotFound, "project not found")
	}

	return nil
}

// IncrementViews atomically bumps the view counter.
func (s *Project) IncrementViews(ctx context.Context, id string) error {
	return s.incrementCounter(ctx, id, "views")
}

// IncrementLikes atomically bumps the like counter.
func (s *Project) IncrementLikes(ctx context.Context, id string) error {
	return s.incrementCounter(ctx, id, "likes")
}

func (s *Project) incrementCounter(ctx context.Context, id, field string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrap(httperr.ErrNotFound, "invalid project id")
	}

	if err = s.dao.IncrementCounter(ctx, oid, field); err != nil {
		if mongo.NotFound(err) {
			return errors.Wrap(httperr.ErrNotFound, "project not found")
		}

		return errors.WithStack(err)
	}

	return nil
}

// ToggleFeatured flips the featured flag and returns the updated project.
func (s *Project) ToggleFeatured(ctx context.Context, id string) (*model.Project, error) {
	project, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return s.Update(ctx, id, &dto.ProjectUpdate{
		Featured: boolPtr(!project.Featured),
	})
}

// Reorder assigns dense positions 0..N-1 following the submitted id order.
// The batch is best-effort, not transactional; a crash mid-write can leave a
// partially renumbered ordering (cosmetic data only).
func (s *Project) Reorder(ctx context.Context, ids []string) error {
	orders, err := buildOrderAssignments(ids)
	if err != nil {
		return errors.WithStack(err)
	}

	if err = s.dao.ApplyOrder(ctx, orders); err != nil {
		return errors.Wrap(err, "apply order")
	}

	s.logger.Info("reordered projects", zap.Int("n", len(orders)))
	return nil
}

// Count returns the number of projects for the dashboard aggregate.
func (s *Project) Count(ctx context.Context) (int64, error) {
	return s.dao.Count(ctx)
}

// buildOrderAssignments maps each submitted id to its dense position.
func buildOrderAssignments(ids []string) (map[primitive.ObjectID]int64, error) {
	if len(ids) == 0 {
		return nil, errors.Wrap(httperr.ErrValidation, "order is required")
	}

	orders := make(map[primitive.ObjectID]int64, len(ids))
	for i, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, errors.Wrapf(httperr.ErrValidation, "invalid project id %q", id)
		}
		if _, ok := orders[oid]; ok {
			return nil, errors.Wrapf(httperr.ErrValidation, "duplicate project id %q", id)
		}

		orders[oid] = int64(i)
	}

	return orders, nil
}

func boolPtr(v bool) *bool {
	return &v
}
