// Package model contains the YouTube video documents.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoStatus is the publication state of a video entry.
type VideoStatus string

const (
	// StatusDraft hidden from public listings, the default
	StatusDraft VideoStatus = "draft"
	// StatusPublished visible on the site
	StatusPublished VideoStatus = "published"
)

// DefaultAuthor is used when the payload omits the author.
const DefaultAuthor = "Satinder"

// Video is a YouTube video surfaced on the portfolio.
type Video struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Title title of the video
	Title string `bson:"title" json:"title"`
	// Description video description
	Description string `bson:"description" json:"description"`
	// VideoURL canonical YouTube URL
	VideoURL string `bson:"video_url" json:"videoUrl"`
	// Thumbnail thumbnail image URL
	Thumbnail string `bson:"thumbnail" json:"thumbnail"`
	// Tags free-form topic tags
	Tags []string `bson:"tags" json:"tags"`
	// Author display name, defaults to DefaultAuthor
	Author string `bson:"author" json:"author"`
	// Status draft or published
	Status VideoStatus `bson:"status" json:"status"`
	// PublishedAt set once on the first transition to published
	PublishedAt *time.Time `bson:"published_at,omitempty" json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updatedAt"`
}
