// Package model contains the freelance project documents.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FreelanceStatus is the delivery state of a freelance engagement.
type FreelanceStatus string

const (
	// StatusOngoing work still in progress
	StatusOngoing FreelanceStatus = "ongoing"
	// StatusCompleted delivered work, the default
	StatusCompleted FreelanceStatus = "completed"
)

// FreelanceProject is a client engagement shown on the portfolio.
type FreelanceProject struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Title title of the engagement
	Title string `bson:"title" json:"title"`
	// ClientName client the work was delivered for
	ClientName string `bson:"client_name" json:"clientName"`
	// ClientCompany optional company behind the client
	ClientCompany string `bson:"client_company" json:"clientCompany"`
	// ProjectURL live URL of the delivered work
	ProjectURL string `bson:"project_url" json:"projectUrl"`
	// Description what was built
	Description string `bson:"description" json:"description"`
	// Images gallery image URLs
	Images []string `bson:"images" json:"images"`
	// Technologies stack used
	Technologies []string `bson:"technologies" json:"technologies"`
	// Testimonial client quote
	Testimonial string `bson:"testimonial" json:"testimonial"`
	// ClientRating 1..5 stars, 0 means unrated
	ClientRating int `bson:"client_rating" json:"clientRating"`
	// Status ongoing or completed
	Status FreelanceStatus `bson:"status" json:"status"`
	// Featured whether the engagement is highlighted
	Featured  bool      `bson:"featured" json:"featured"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
