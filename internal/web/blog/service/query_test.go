package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/satindersinghsall/portfolio-api/internal/web/blog/dto"
)

func TestBuildPostFilter(t *testing.T) {
	t.Parallel()

	t.Run("empty filter matches everything", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, buildPostFilter(dto.PostFilter{}))
	})

	t.Run("exact and membership filters", func(t *testing.T) {
		t.Parallel()

		filter := buildPostFilter(dto.PostFilter{
			Status:   "published",
			Category: "Tech",
			Tag:      "go",
		})
		require.Equal(t, bson.D{
			{Key: "status", Value: "published"},
			{Key: "category", Value: "Tech"},
			{Key: "tags", Value: "go"},
		}, filter)
	})

	t.Run("featured only matches literal true", func(t *testing.T) {
		t.Parallel()

		filter := buildPostFilter(dto.PostFilter{Featured: "true"})
		require.Equal(t, bson.D{{Key: "featured", Value: true}}, filter)

		filter = buildPostFilter(dto.PostFilter{Featured: "yes"})
		require.Equal(t, bson.D{{Key: "featured", Value: false}}, filter)

		filter = buildPostFilter(dto.PostFilter{Featured: "false"})
		require.Equal(t, bson.D{{Key: "featured", Value: false}}, filter)
	})

	t.Run("search spans title summary and tags", func(t *testing.T) {
		t.Parallel()

		filter := buildPostFilter(dto.PostFilter{Search: "gin"})
		require.Len(t, filter, 1)
		require.Equal(t, "$or", filter[0].Key)

		or, ok := filter[0].Value.(bson.A)
		require.True(t, ok)
		require.Len(t, or, 3)

		keys := []string{}
		for _, clause := range or {
			d, ok := clause.(bson.D)
			require.True(t, ok)
			require.Len(t, d, 1)
			keys = append(keys, d[0].Key)

			re, ok := d[0].Value.(primitive.Regex)
			require.True(t, ok)
			require.Equal(t, "gin", re.Pattern)
			require.Equal(t, "i", re.Options)
		}
		require.Equal(t, []string{"title", "summary", "tags"}, keys)
	})

	t.Run("search metacharacters are quoted", func(t *testing.T) {
		t.Parallel()

		filter := buildPostFilter(dto.PostFilter{Search: "c++ (v2)"})
		or := filter[0].Value.(bson.A)
		re := or[0].(bson.D)[0].Value.(primitive.Regex)
		require.Equal(t, `c\+\+ \(v2\)`, re.Pattern)
	})
}

func TestBuildPostSort(t *testing.T) {
	t.Parallel()

	require.Equal(t, bson.D{{Key: "created_at", Value: 1}}, buildPostSort("oldest"))
	require.Equal(t, bson.D{{Key: "views", Value: -1}}, buildPostSort("popular"))
	require.Equal(t, bson.D{{Key: "created_at", Value: -1}}, buildPostSort("latest"))
	require.Equal(t, bson.D{{Key: "created_at", Value: -1}}, buildPostSort(""))
	require.Equal(t, bson.D{{Key: "created_at", Value: -1}}, buildPostSort("trending"))
}
