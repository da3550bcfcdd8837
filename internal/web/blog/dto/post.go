// Package dto carries request payloads and query configs for blog posts.
package dto

import (
	"time"

	"github.com/satindersinghsall/portfolio-api/internal/web/blog/model"
)

// PostFilter is the parsed listing query parameters.
type PostFilter struct {
	// Status exact-match on post status
	Status string
	// Tag membership match against the tag list
	Tag string
	// Category exact-match on category
	Category string
	// Featured raw query value; only the literal "true" selects featured posts
	Featured string
	// Search case-insensitive partial match across title, summary, and tags
	Search string
	// Sort one of latest/oldest/popular; anything else falls back to latest
	Sort string
}

// PostInput is the create payload.
type PostInput struct {
	Title           string              `json:"title"`
	Summary         string              `json:"summary"`
	EditorType      string              `json:"editorType"`
	Content         string              `json:"content"`
	ContentBlocks   model.ContentBlocks `json:"contentBlocks"`
	Image           string              `json:"image"`
	OgImage         string              `json:"ogImage"`
	Tags            []string            `json:"tags"`
	Category        string              `json:"category"`
	Author          string              `json:"author"`
	Status          string              `json:"status"`
	Featured        bool                `json:"featured"`
	MetaTitle       string              `json:"metaTitle"`
	MetaDescription string              `json:"metaDescription"`
	ScheduledAt     *time.Time          `json:"scheduledAt"`
}

// PostUpdate is the partial update payload; nil fields are left untouched.
type PostUpdate struct {
	Title           *string              `json:"title"`
	Summary         *string              `json:"summary"`
	EditorType      *string              `json:"editorType"`
	Content         *string              `json:"content"`
	ContentBlocks   *model.ContentBlocks `json:"contentBlocks"`
	Image           *string              `json:"image"`
	OgImage         *string              `json:"ogImage"`
	Tags            *[]string            `json:"tags"`
	Category        *string              `json:"category"`
	Author          *string              `json:"author"`
	Status          *string              `json:"status"`
	Featured        *bool                `json:"featured"`
	MetaTitle       *string              `json:"metaTitle"`
	MetaDescription *string              `json:"metaDescription"`
	ScheduledAt     *time.Time           `json:"scheduledAt"`
	PublishedAt     *time.Time           `json:"publishedAt"`
}
