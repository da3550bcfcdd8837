// Package model contains the portfolio project documents.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a portfolio project.
type Project struct {
	// ID unique identifier for the project
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Title title of the project
	Title string `bson:"title" json:"title"`
	// Description project description
	Description string `bson:"description" json:"description"`
	// Technologies stack used, at least one entry required
	Technologies []string `bson:"technologies" json:"technologies"`
	// GithubLink source repository URL
	GithubLink string `bson:"github_link" json:"githubLink"`
	// Link live demo URL
	Link string `bson:"link" json:"link"`
	// Image cover image URL
	Image string `bson:"image" json:"image"`
	// Featured whether the project is highlighted
	Featured bool `bson:"featured" json:"featured"`
	// Priority manual ranking weight, higher first
	Priority int64 `bson:"priority" json:"priority"`
	// Order drag-and-drop position, densely numbered 0..N-1
	Order int64 `bson:"order" json:"order"`
	// Views read counter
	Views int64 `bson:"views" json:"views"`
	// Likes like counter
	Likes int64 `bson:"likes" json:"likes"`
	// CreatedAt time when the project was created
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	// UpdatedAt time when the project was last modified
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
