// Package service is the service layer of blog posts.
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

	"github.com/satindersinghsall/portfolio-api/internal/web/blog/dao"
	"github.com/satindersinghsall/portfolio-api/internal/web/blog/dto"
	"github.com/satindersinghsall/portfolio-api/internal/web/blog/model"
	"github.com/satindersinghsall/portfolio-api/library/db/mongo"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

// Blog blog service
type Blog struct {
	logger logSDK.Logger
	dao    *dao.Blog
}

// New creates the blog service and ensures the unique slug index.
func New(ctx context.Context, logger logSDK.Logger, dao *dao.Blog) (*Blog, error) {
	s := &Blog{
		logger: logger,
		dao:    dao,
	}

	if err := dao.SetupIndexes(ctx); err != nil {
		return nil, errors.Wrap(err, "setup blog indexes")
	}

	return s, nil
}

// List loads posts matching the optional filter parameters.
func (s *Blog) List(ctx context.Context, cfg dto.PostFilter) ([]*model.Post, error) {
	posts, err := s.dao.Find(ctx, buildPostFilter(cfg), buildPostSort(cfg.Sort))
	if err != nil {
		return nil, errors.Wrap(err, "list posts")
	}

	return posts, nil
}

// GetByID loads a single post by its hex id.
func (s *Blog) GetByID(ctx context.Context, id string) (*model.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrap(httperr.ErrNotFound, "invalid post id")
	}

	post, err := s.dao.GetByID(ctx, oid)
	if err != nil {
		if mongo.NotFound(err) {
			return nil, errors.Wrap(httperr.ErrNotFound, "post not found")
		}

		return nil, errors.WithStack(err)
	}

	return post, nil
}

// GetBySlug loads a single post by slug.
func (s *Blog) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	post, err := s.dao.GetBySlug(ctx, slug)
	if err != nil {
		if mongo.NotFound(err) {
			return nil, errors.Wrap(httperr.ErrNotFound, "post not found")
		}

		return nil, errors.WithStack(err)
	}

	return post, nil
}

// Create validates the payload, derives a unique slug, and stores the post.
func (s *Blog) Create(ctx context.Context, input *dto.PostInput) (*model.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.Wrap(httperr.ErrValidation, "title is required")
	}

	editorType := normalizeEditorType(input.EditorType)
	if err := validateContent(editorType, input.Content, input.ContentBlocks); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := validateOptionalLimits(input.Summary, input.MetaDescription); err != nil {
		return nil, errors.WithStack(err)
	}

	slug, err := uniqueSlug(ctx, title, s.dao.IsSlugTaken)
	if err != nil {
		return nil, errors.Wrap(err, "generate slug")
	}

	now := gutils.Clock.GetUTCNow()
	post := &model.Post{
		ID:              primitive.NewObjectID(),
		Title:           title,
		Slug:            slug,
		Summary:         strings.TrimSpace(input.Summary),
		EditorType:      editorType,
		Content:         input.Content,
		ContentBlocks:   input.ContentBlocks,
		Image:           input.Image,
		OgImage:         input.OgImage,
		Tags:            dedupeTags(input.Tags),
		Category:        input.Category,
		Author:          input.Author,
		Status:          normalizeStatus(input.Status),
		Featured:        input.Featured,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		ScheduledAt:     input.ScheduledAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if post.Category == "" {
		post.Category = model.DefaultCategory
	}
	if post.Author == "" {
		post.Author = model.DefaultAuthor
	}
	if editorType == model.EditorTypeMarkdown {
		post.ContentHTML = renderMarkdown(post.Content)
	}
	if post.Status == model.PostStatusPublished {
		post.PublishedAt = &now
	}

	if err = s.dao.Insert(ctx, post); err != nil {
		return nil, errors.Wrap(err, "insert post")
	}

	s.logger.Info("created post",
		zap.String("slug", post.Slug),
		zap.String("editor_type", string(post.EditorType)))
	return post, nil
}

// Update applies a partial update. A changed title regenerates the slug from
// scratch; setting status to published stamps publishedAt exactly once.
func (s *Blog) Update(ctx context.Context, id string, update *dto.PostUpdate) (*model.Post, error) {
	stored, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	set := bson.M{"updated_at": gutils.Clock.GetUTCNow()}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, errors.Wrap(httperr.ErrValidation, "title cannot be blank")
		}

		if title != stored.Title {
			slug, err := slugForTitle(ctx, title, stored.Slug, s.dao.IsSlugTaken)
			if err != nil {
				return nil, errors.Wrap(err, "regenerate slug")
			}

			set["title"] = title
			set["slug"] = slug
		}
	}

	// validation applies only to fields supplied in the update
	editorType := stored.EditorType
	if update.EditorType != nil {
		editorType = normalizeEditorType(*update.EditorType)
		set["editor_type"] = editorType
	}

	if update.Content != nil {
		if editorType == model.EditorTypeMarkdown {
			if strings.TrimSpace(*update.Content) == "" {
				return nil, errors.Wrap(httperr.ErrValidation, "content is required for markdown posts")
			}
			set["content_html"] = renderMarkdown(*update.Content)
		}
		set["content"] = *update.Content
	}

	if update.ContentBlocks != nil {
		if editorType == model.EditorTypeEditorJS && len(update.ContentBlocks.Blocks) == 0 {
			return nil, errors.Wrap(httperr.ErrValidation, "contentBlocks must contain at least one block")
		}
		set["content_blocks"] = *update.ContentBlocks
	}

	if update.Summary != nil {
		if err := validateOptionalLimits(*update.Summary, ""); err != nil {
			return nil, errors.WithStack(err)
		}
		set["summary"] = strings.TrimSpace(*update.Summary)
	}
	if update.MetaDescription != nil {
		if err := validateOptionalLimits("", *update.MetaDescription); err != nil {
			return nil, errors.WithStack(err)
		}
		set["meta_description"] = *update.MetaDescription
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.OgImage != nil {
		set["og_image"] = *update.OgImage
	}
	if update.Tags != nil {
		set["tags"] = dedupeTags(*update.Tags)
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Author != nil {
		set["author"] = *update.Author
	}
	if update.Featured != nil {
		set["featured"] = *update.Featured
	}
	if update.MetaTitle != nil {
		set["meta_title"] = *update.MetaTitle
	}
	if update.ScheduledAt != nil {
		set["scheduled_at"] = *update.ScheduledAt
	}

	if update.Status != nil {
		status := normalizeStatus(*update.Status)
		set["status"] = status

		if stampPublishedAt(status, stored.PublishedAt) {
			set["published_at"] = gutils.Clock.GetUTCNow()
		}
	}
	if update.PublishedAt != nil {
		// explicit override, e.g. backdating the publish time
		set["published_at"] = *update.PublishedAt
	}

	post, err := s.dao.Update(ctx, stored.ID, set)
	if err != nil {
		if mongo.NotFound(err) {
			return nil, errors.Wrap(httperr.ErrNotFound, "post not found")
		}

		return nil, errors.WithStack(err)
	}

	return post, nil
}

// Delete removes a post by id.
func (s *Blog) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrap(httperr.ErrNotFound, "invalid post id")
	}

	deleted, err := s.dao.Delete(ctx, oid)
	if err != nil {
		return errors.WithStack(err)
	}
	if !deleted {
		return errors.Wrap(httperr.ErrNotFound, "post not found")
	}

	return nil
}

// IncrementViews atomically bumps a post's view counter.
func (s *Blog) IncrementViews(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrap(httperr.ErrNotFound, "invalid post id")
	}

	if err = s.dao.IncrementViews(ctx, oid); err != nil {
		if mongo.NotFound(err) {
			return errors.Wrap(httperr.ErrNotFound, "post not found")
		}

		return errors.WithStack(err)
	}

	return nil
}

// Count returns the number of posts for the dashboard aggregate.
func (s *Blog) Count(ctx context.Context) (int64, error) {
	return s.dao.Count(ctx)
}

// dedupeTags removes duplicate tags preserving first-seen order.
func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}
