// Package model contains the blog post documents.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EditorType selects which content field is authoritative for a post.
type EditorType string

const (
	// EditorTypeMarkdown free-text markdown content
	EditorTypeMarkdown EditorType = "markdown"
	// EditorTypeEditorJS structured block-based content
	EditorTypeEditorJS EditorType = "editorjs"
)

// PostStatus post publication status
type PostStatus string

const (
	// PostStatusDraft not publicly visible
	PostStatusDraft PostStatus = "draft"
	// PostStatusPublished publicly visible
	PostStatusPublished PostStatus = "published"
)

const (
	// DefaultCategory category assigned when none is given
	DefaultCategory = "General"
	// DefaultAuthor author assigned when none is given
	DefaultAuthor = "Admin"
)

// Block is a single editorjs content block.
type Block struct {
	// ID block identifier assigned by the editor
	ID string `bson:"id,omitempty" json:"id,omitempty"`
	// Type block type, e.g. paragraph/header/list
	Type string `bson:"type" json:"type"`
	// Data type-dependent block payload
	Data map[string]any `bson:"data" json:"data"`
}

// ContentBlocks is the structured editorjs document.
type ContentBlocks struct {
	// Time editor-side timestamp of the last change
	Time int64 `bson:"time" json:"time"`
	// Blocks ordered list of content blocks
	Blocks []Block `bson:"blocks" json:"blocks"`
	// Version editorjs format version
	Version string `bson:"version" json:"version"`
}

// Post is a blog post. Both content fields are always persisted; EditorType
// says which one is authoritative.
type Post struct {
	// ID unique identifier for the post
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Title title of the post
	Title string `bson:"title" json:"title"`
	// Slug URL-safe unique identifier derived from the title
	Slug string `bson:"slug" json:"slug"`
	// Summary short description, capped at 250 chars
	Summary string `bson:"summary" json:"summary"`
	// EditorType discriminator for the authoritative content field
	EditorType EditorType `bson:"editor_type" json:"editorType"`
	// Content markdown text, authoritative when EditorType is markdown
	Content string `bson:"content" json:"content"`
	// ContentBlocks structured blocks, authoritative when EditorType is editorjs
	ContentBlocks ContentBlocks `bson:"content_blocks" json:"contentBlocks"`
	// ContentHTML server-side render of Content, empty for editorjs posts
	ContentHTML string `bson:"content_html" json:"contentHTML"`
	// Image cover image URL
	Image string `bson:"image" json:"image"`
	// OgImage social preview image URL
	OgImage string `bson:"og_image" json:"ogImage"`
	// Tags set-like list of tags
	Tags []string `bson:"tags" json:"tags"`
	// Category post category
	Category string `bson:"category" json:"category"`
	// Author display author name
	Author string `bson:"author" json:"author"`
	// Status draft or published
	Status PostStatus `bson:"status" json:"status"`
	// Featured whether the post is highlighted
	Featured bool `bson:"featured" json:"featured"`
	// MetaTitle SEO title override
	MetaTitle string `bson:"meta_title" json:"metaTitle"`
	// MetaDescription SEO description, capped at 160 chars
	MetaDescription string `bson:"meta_description" json:"metaDescription"`
	// ScheduledAt optional scheduled publication time
	ScheduledAt *time.Time `bson:"scheduled_at,omitempty" json:"scheduledAt,omitempty"`
	// PublishedAt set once on the first transition to published
	PublishedAt *time.Time `bson:"published_at,omitempty" json:"publishedAt,omitempty"`
	// Views read counter
	Views int64 `bson:"views" json:"views"`
	// CreatedAt time when the post was created
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	// UpdatedAt time when the post was last modified
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
