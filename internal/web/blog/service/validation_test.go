package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/satindersinghsall/portfolio-api/internal/web/blog/model"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

func TestNormalizeEditorType(t *testing.T) {
	t.Parallel()

	require.Equal(t, model.EditorTypeMarkdown, normalizeEditorType("markdown"))
	require.Equal(t, model.EditorTypeEditorJS, normalizeEditorType("editorjs"))
	require.Equal(t, model.EditorTypeEditorJS, normalizeEditorType("Markdown"))
	require.Equal(t, model.EditorTypeEditorJS, normalizeEditorType(""))
	require.Equal(t, model.EditorTypeEditorJS, normalizeEditorType("wysiwyg"))
}

func TestNormalizePostStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, model.PostStatusPublished, normalizeStatus("published"))
	require.Equal(t, model.PostStatusDraft, normalizeStatus("draft"))
	require.Equal(t, model.PostStatusDraft, normalizeStatus("Published"))
	require.Equal(t, model.PostStatusDraft, normalizeStatus(""))
}

func TestValidateContent(t *testing.T) {
	t.Parallel()

	t.Run("markdown requires content", func(t *testing.T) {
		t.Parallel()

		err := validateContent(model.EditorTypeMarkdown, "", model.ContentBlocks{})
		require.ErrorIs(t, err, httperr.ErrValidation)

		err = validateContent(model.EditorTypeMarkdown, "   \n\t", model.ContentBlocks{})
		require.ErrorIs(t, err, httperr.ErrValidation)

		require.NoError(t,
			validateContent(model.EditorTypeMarkdown, "# hi", model.ContentBlocks{}))
	})

	t.Run("editorjs requires blocks", func(t *testing.T) {
		t.Parallel()

		err := validateContent(model.EditorTypeEditorJS, "", model.ContentBlocks{})
		require.ErrorIs(t, err, httperr.ErrValidation)

		blocks := model.ContentBlocks{
			Blocks: []model.Block{{Type: "paragraph"}},
		}
		require.NoError(t, validateContent(model.EditorTypeEditorJS, "", blocks))
	})

	t.Run("editorjs ignores content field", func(t *testing.T) {
		t.Parallel()

		err := validateContent(model.EditorTypeEditorJS, "plain text", model.ContentBlocks{})
		require.ErrorIs(t, err, httperr.ErrValidation)
	})
}

func TestStampPublishedAt(t *testing.T) {
	t.Parallel()

	t.Run("first transition to published stamps", func(t *testing.T) {
		t.Parallel()

		require.True(t, stampPublishedAt(model.PostStatusPublished, nil))
	})

	t.Run("already published posts keep the original time", func(t *testing.T) {
		t.Parallel()

		published := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		require.False(t, stampPublishedAt(model.PostStatusPublished, &published))
	})

	t.Run("draft never stamps", func(t *testing.T) {
		t.Parallel()

		require.False(t, stampPublishedAt(model.PostStatusDraft, nil))

		published := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		require.False(t, stampPublishedAt(model.PostStatusDraft, &published))
	})
}

func TestValidateOptionalLimits(t *testing.T) {
	t.Parallel()

	require.NoError(t, validateOptionalLimits("", ""))
	require.NoError(t, validateOptionalLimits(
		strings.Repeat("a", maxSummaryLength),
		strings.Repeat("b", maxMetaDescriptionLength)))

	err := validateOptionalLimits(strings.Repeat("a", maxSummaryLength+1), "")
	require.ErrorIs(t, err, httperr.ErrValidation)

	err = validateOptionalLimits("", strings.Repeat("b", maxMetaDescriptionLength+1))
	require.ErrorIs(t, err, httperr.ErrValidation)
}
