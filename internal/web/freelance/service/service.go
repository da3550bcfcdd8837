// Package service is the service layer of freelance projects.
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

	"github.com/satindersinghsall/portfolio-api/internal/web/freelance/dao"
	"github.com/satindersinghsall/portfolio-api/internal/web/freelance/dto"
	"github.com/satindersinghsall/portfolio-api/internal/web/freelance/model"
	"github.com/satindersinghsall/portfolio-api/library/db/mongo"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

// Freelance freelance project service
type Freelance struct {
	logger logSDK.Logger
	dao    *dao.Freelance
}

// New new freelance service
func New(logger logSDK.Logger, dao *dao.Freelance) *Freelance {
	return &Freelance{
		logger: logger,
		dao:    dao,
	}
}

// List returns all freelance projects.
func (s *Freelance) List(ctx context.Context) ([]*model.FreelanceProject, error) {
	return s.dao.ListAll(ctx)
}

// GetByID loads a single freelance project by its hex id.
func (s *Freelance) GetByID(ctx context.Context, id string) (*model.FreelanceProject, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrap(httperr.ErrNotFound, "invalid freelance project id")
	}

	project, err := s.dao.GetByID(ctx, oid)
	if err != nil {
		if mongo.NotFound(err) {
			return nil, errors.Wrap(httperr.ErrNotFound, "freelance project not found")
		}

		return nil, errors.WithStack(err)
	}

	return project, nil
}

// Create validates the payload and stores the freelance project.
func (s *Freelance) Create(ctx context.Context, input *dto.FreelanceInput) (*model.FreelanceProject, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.Wrap(httperr.ErrValidation, "title is required")
	}
	clientName := strings.TrimSpace(input.ClientName)
	if clientName == "" {
		return nil, errors.Wrap(httperr.ErrValidation, "clientName is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, errors.Wrap(httperr.ErrValidation, "description is required")
	}
	if err := validateRating(input.ClientRating); err != nil {
		return nil, errors.WithStack(err)
	}

	now := gutils.Clock.GetUTCNow()
	project := &model.FreelanceProject{
		ID:            primitive.NewObjectID(),
		Title:         title,
		ClientName:    clientName,
		ClientCompany: input.ClientCompany,
		ProjectURL:    input.ProjectURL,
		Description:   input.Description,
		Images:        input.Images,
		Technologies:  input.Technologies,
		Testimonial:   input.Testimonial,
		ClientRating:  input.ClientRating,
		Status:        normalizeStatus(input.Status),
		Featured:      input.Featured,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.dao.Insert(ctx, project); err != nil {
		return nil, errors.Wrap(err, "insert freelance project")
	}

	s.logger.Info("created freelance project", zap.String("title", project.Title))
	return project, nil
}

// Update applies a partial update.
func (s *Freelance) Update(ctx context.Context, id string, update *dto.FreelanceUpdate) (*model.FreelanceProject, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrap(httperr.ErrNotFound, "invalid freelance project id")
	}

	set, err := buildFreelanceUpdate(update, gutils.Clock.GetUTCNow())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	project, err := s.dao.Update(ctx, oid, set)
	if err != nil {
		if mongo.NotFound(err) {
			return nil, errors.Wrap(httperr.ErrNotFound, "freelance project not found")
		}

		return nil, errors.WithStack(err)
	}

	return project, nil
}

// Delete removes a freelance project by id.
func (s *Freelance) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrap(httperr.ErrNotFound, "invalid freelance project id")
	}

	deleted, err := s.dao.Delete(ctx, oid)
	if err != nil {
		return errors.WithStack(err)
	}
	if !deleted {
		return errors.Wrap(httperr.ErrNotFound, "freelance project not found")
	}

	return nil
}

// Count returns the number of freelance projects for the dashboard aggregate.
func (s *Freelance) Count(ctx context.Context) (int64, error) {
	return s.dao.Count(ctx)
}

// buildFreelanceUpdate translates the supplied fields into a $set document.
// Required strings are stored trimmed.
func buildFreelanceUpdate(update *dto.FreelanceUpdate, now time.Time) (bson.M, error) {
	set := bson.M{"updated_at": now}
	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, errors.Wrap(httperr.ErrValidation, "title cannot be blank")
		}
		set["title"] = title
	}
	if update.ClientName != nil {
		clientName := strings.TrimSpace(*update.ClientName)
		if clientName == "" {
			return nil, errors.Wrap(httperr.ErrValidation, "clientName cannot be blank")
		}
		set["client_name"] = clientName
	}
	if update.ClientCompany != nil {
		set["client_company"] = *update.ClientCompany
	}
	if update.ProjectURL != nil {
		set["project_url"] = *update.ProjectURL
	}
	if update.Description != nil {
		if strings.TrimSpace(*update.Description) == "" {
			return nil, errors.Wrap(httperr.ErrValidation, "description cannot be blank")
		}
		set["description"] = *update.Description
	}
	if update.Images != nil {
		set["images"] = *update.Images
	}
	if update.Technologies != nil {
		set["technologies"] = *update.Technologies
	}
	if update.Testimonial != nil {
		set["testimonial"] = *update.Testimonial
	}
	if update.ClientRating != nil {
		if err := validateRating(*update.ClientRating); err != nil {
			return nil, errors.WithStack(err)
		}
		set["client_rating"] = *update.ClientRating
	}
	if update.Status != nil {
		set["status"] = normalizeStatus(*update.Status)
	}
	if update.Featured != nil {
		set["featured"] = *update.Featured
	}

	return set, nil
}

// normalizeStatus keeps only the known states, defaulting to completed.
func normalizeStatus(raw string) model.FreelanceStatus {
	if raw == string(model.StatusOngoing) {
		return model.StatusOngoing
	}

	return model.StatusCompleted
}

// validateRating accepts 0 (unrated) or 1..5 stars.
func validateRating(rating int) error {
	if rating != 0 && (rating < 1 || rating > 5) {
		return errors.Wrap(httperr.ErrValidation, "clientRating must be between 1 and 5")
	}

	return nil
}
