package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Hello World":              "hello-world",
		"  My First Post!  ":       "my-first-post",
		"Go, Gin & MongoDB":        "go-gin-mongodb",
		"already-hyphenated-title": "already-hyphenated-title",
		"Multiple   Spaces":        "multiple-spaces",
		"--edge--case--":           "edge-case",
		"C'est l'été":              "cest-lt",
		"!!!":                      "",
		"":                         "",
	}

	for title, want := range cases {
		require.Equal(t, want, slugify(title), "title %q", title)
	}
}

func TestUniqueSlug(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("free base", func(t *testing.T) {
		t.Parallel()

		slug, err := uniqueSlug(ctx, "Hello World",
			func(context.Context, string) (bool, error) { return false, nil })
		require.NoError(t, err)
		require.Equal(t, "hello-world", slug)
	})

	t.Run("sequential suffixes", func(t *testing.T) {
		t.Parallel()

		existing := map[string]bool{
			"hello-world":   true,
			"hello-world-1": true,
		}
		var checked []string
		slug, err := uniqueSlug(ctx, "Hello World",
			func(_ context.Context, s string) (bool, error) {
				checked = append(checked, s)
				return existing[s], nil
			})
		require.NoError(t, err)
		require.Equal(t, "hello-world-2", slug)
		require.Equal(t, []string{"hello-world", "hello-world-1", "hello-world-2"}, checked)
	})

	t.Run("empty base falls back to generated slug", func(t *testing.T) {
		t.Parallel()

		slug, err := uniqueSlug(ctx, "!!!",
			func(context.Context, string) (bool, error) {
				t.Fatal("taken should not be called for generated slugs")
				return false, nil
			})
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(slug, "post-"))
		require.Greater(t, len(slug), len("post-"))
	})

	t.Run("lookup error propagates", func(t *testing.T) {
		t.Parallel()

		_, err := uniqueSlug(ctx, "Hello",
			func(context.Context, string) (bool, error) {
				return false, context.DeadlineExceeded
			})
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestSlugForTitle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("same base keeps the post's own slug", func(t *testing.T) {
		t.Parallel()

		// the store reports "hello-world" as taken (by this very post), but
		// the post must not collide with itself after a cosmetic retitle
		slug, err := slugForTitle(ctx, "Hello, World!", "hello-world",
			func(_ context.Context, s string) (bool, error) {
				return s == "hello-world", nil
			})
		require.NoError(t, err)
		require.Equal(t, "hello-world", slug)
	})

	t.Run("new title gets a fresh unique slug", func(t *testing.T) {
		t.Parallel()

		existing := map[string]bool{
			"old-title": true,
			"new-title": true,
		}
		slug, err := slugForTitle(ctx, "New Title", "old-title",
			func(_ context.Context, s string) (bool, error) {
				return existing[s], nil
			})
		require.NoError(t, err)
		require.Equal(t, "new-title-1", slug)
	})

	t.Run("no suffix reuse on regeneration", func(t *testing.T) {
		t.Parallel()

		// the old slug carried a suffix; the new base is free, so the new
		// slug is generated from scratch without inheriting "-3"
		slug, err := slugForTitle(ctx, "Fresh Topic", "old-title-3",
			func(context.Context, string) (bool, error) { return false, nil })
		require.NoError(t, err)
		require.Equal(t, "fresh-topic", slug)
	})
}
