package service

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/satindersinghsall/portfolio-api/internal/web/blog/dto"
)

// buildPostFilter translates the optional query parameters into a store
// filter. Search matches title OR summary OR any tag, case-insensitively.
func buildPostFilter(cfg dto.PostFilter) bson.D {
	filter := bson.D{}
	if cfg.Status != "" {
		filter = append(filter, bson.E{Key: "status", Value: cfg.Status})
	}

	if cfg.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: cfg.Category})
	}

	if cfg.Tag != "" {
		filter = append(filter, bson.E{Key: "tags", Value: cfg.Tag})
	}

	if cfg.Featured != "" {
		filter = append(filter, bson.E{Key: "featured", Value: cfg.Featured == "true"})
	}

	if cfg.Search != "" {
		re := primitive.Regex{
			Pattern: regexp.QuoteMeta(cfg.Search),
			Options: "i",
		}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: re}},
			bson.D{{Key: "summary", Value: re}},
			bson.D{{Key: "tags", Value: re}},
		}})
	}

	return filter
}

// buildPostSort maps the sort parameter to one of three fixed orderings.
// Unrecognized values fall back silently to the default (latest first).
func buildPostSort(sort string) bson.D {
	switch sort {
	case "oldest":
		return bson.D{{Key: "created_at", Value: 1}}
	case "popular":
		return bson.D{{Key: "views", Value: -1}}
	default: // "latest" and anything else
		return bson.D{{Key: "created_at", Value: -1}}
	}
}
