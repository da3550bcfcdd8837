package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/satindersinghsall/portfolio-api/internal/web/freelance/dto"
	"github.com/satindersinghsall/portfolio-api/internal/web/freelance/model"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

func TestNormalizeStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, model.StatusOngoing, normalizeStatus("ongoing"))
	require.Equal(t, model.StatusCompleted, normalizeStatus("completed"))
	require.Equal(t, model.StatusCompleted, normalizeStatus(""))
	require.Equal(t, model.StatusCompleted, normalizeStatus("paused"))
}

func TestValidateRating(t *testing.T) {
	t.Parallel()

	require.NoError(t, validateRating(0)) // unrated
	for rating := 1; rating <= 5; rating++ {
		require.NoError(t, validateRating(rating))
	}

	require.ErrorIs(t, validateRating(-1), httperr.ErrValidation)
	require.ErrorIs(t, validateRating(6), httperr.ErrValidation)
}

func strPtr(s string) *string { return &s }

func TestBuildFreelanceUpdate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("required strings are stored trimmed", func(t *testing.T) {
		t.Parallel()

		set, err := buildFreelanceUpdate(&dto.FreelanceUpdate{
			Title:      strPtr("  Store Revamp  "),
			ClientName: strPtr("  Acme Corp  "),
		}, now)
		require.NoError(t, err)
		require.Equal(t, "Store Revamp", set["title"])
		require.Equal(t, "Acme Corp", set["client_name"])
		require.Equal(t, now, set["updated_at"])
	})

	t.Run("blank required strings rejected", func(t *testing.T) {
		t.Parallel()

		_, err := buildFreelanceUpdate(&dto.FreelanceUpdate{Title: strPtr("   ")}, now)
		require.ErrorIs(t, err, httperr.ErrValidation)

		_, err = buildFreelanceUpdate(&dto.FreelanceUpdate{ClientName: strPtr("")}, now)
		require.ErrorIs(t, err, httperr.ErrValidation)

		_, err = buildFreelanceUpdate(&dto.FreelanceUpdate{Description: strPtr(" \t")}, now)
		require.ErrorIs(t, err, httperr.ErrValidation)
	})

	t.Run("rating is validated", func(t *testing.T) {
		t.Parallel()

		rating := 6
		_, err := buildFreelanceUpdate(&dto.FreelanceUpdate{ClientRating: &rating}, now)
		require.ErrorIs(t, err, httperr.ErrValidation)

		rating = 4
		set, err := buildFreelanceUpdate(&dto.FreelanceUpdate{ClientRating: &rating}, now)
		require.NoError(t, err)
		require.Equal(t, 4, set["client_rating"])
	})

	t.Run("status is normalized", func(t *testing.T) {
		t.Parallel()

		set, err := buildFreelanceUpdate(&dto.FreelanceUpdate{Status: strPtr("paused")}, now)
		require.NoError(t, err)
		require.Equal(t, model.StatusCompleted, set["status"])
	})
}
