package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/google/uuid"
)

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugSpaceRe    = regexp.MustCompile(`\s+`)
	slugCollapseRe = regexp.MustCompile(`-+`)
)

// slugify derives the base slug from a title: lowercase, strip everything
// outside word characters/whitespace/hyphens, then collapse whitespace runs
// and repeated hyphens to single hyphens.
func slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugSpaceRe.ReplaceAllString(s, "-")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// uniqueSlug produces a slug not yet taken, appending -1, -2, ... to the base
// until a free one is found. A title that strips to nothing falls back to a
// generated identifier instead of an empty slug.
func uniqueSlug(ctx context.Context, title string,
	taken func(context.Context, string) (bool, error)) (string, error) {
	base := slugify(title)
	if base == "" {
		return "post-" + uuid.NewString(), nil
	}

	slug := base
	for i := 1; ; i++ {
		isTaken, err := taken(ctx, slug)
		if err != nil {
			return "", errors.Wrapf(err, "check slug %q", slug)
		}
		if !isTaken {
			return slug, nil
		}

		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// slugForTitle regenerates the slug for a retitled post. The post's current
// slug stays available to itself, so a title that slugifies back to the same
// base keeps the existing slug instead of gaining a suffix.
func slugForTitle(ctx context.Context, title, ownSlug string,
	taken func(context.Context, string) (bool, error)) (string, error) {
	return uniqueSlug(ctx, title, func(ctx context.Context, candidate string) (bool, error) {
		if candidate == ownSlug {
			return false, nil
		}

		return taken(ctx, candidate)
	})
}
