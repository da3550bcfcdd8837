package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/satindersinghsall/portfolio-api/internal/web/youtube/dto"
	"github.com/satindersinghsall/portfolio-api/internal/web/youtube/model"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

func TestNormalizeStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, model.StatusPublished, normalizeStatus("published"))
	require.Equal(t, model.StatusDraft, normalizeStatus("draft"))
	require.Equal(t, model.StatusDraft, normalizeStatus(""))
	require.Equal(t, model.StatusDraft, normalizeStatus("Published"))
}

func strPtr(s string) *string { return &s }

func TestBuildVideoUpdate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("required strings are stored trimmed", func(t *testing.T) {
		t.Parallel()

		set, err := buildVideoUpdate(&dto.VideoUpdate{
			Title:    strPtr("  Go Tutorial  "),
			VideoURL: strPtr("  https://youtu.be/abc  "),
		}, &model.Video{}, now)
		require.NoError(t, err)
		require.Equal(t, "Go Tutorial", set["title"])
		require.Equal(t, "https://youtu.be/abc", set["video_url"])
	})

	t.Run("blank required strings rejected", func(t *testing.T) {
		t.Parallel()

		_, err := buildVideoUpdate(&dto.VideoUpdate{Title: strPtr("   ")},
			&model.Video{}, now)
		require.ErrorIs(t, err, httperr.ErrValidation)

		_, err = buildVideoUpdate(&dto.VideoUpdate{VideoURL: strPtr("")},
			&model.Video{}, now)
		require.ErrorIs(t, err, httperr.ErrValidation)
	})

	t.Run("first publish stamps published_at", func(t *testing.T) {
		t.Parallel()

		set, err := buildVideoUpdate(&dto.VideoUpdate{Status: strPtr("published")},
			&model.Video{}, now)
		require.NoError(t, err)
		require.Equal(t, now, set["published_at"])
	})

	t.Run("later updates keep the original publish time", func(t *testing.T) {
		t.Parallel()

		published := now.Add(-24 * time.Hour)
		set, err := buildVideoUpdate(&dto.VideoUpdate{Status: strPtr("published")},
			&model.Video{PublishedAt: &published}, now)
		require.NoError(t, err)
		require.NotContains(t, set, "published_at")
	})

	t.Run("empty author falls back to default", func(t *testing.T) {
		t.Parallel()

		set, err := buildVideoUpdate(&dto.VideoUpdate{Author: strPtr("")},
			&model.Video{}, now)
		require.NoError(t, err)
		require.Equal(t, model.DefaultAuthor, set["author"])
	})
}
