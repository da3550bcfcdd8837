package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Laisky/errors/v2"

	"github.com/satindersinghsall/portfolio-api/internal/web/blog/model"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

const (
	// maxSummaryLength caps the length of post summaries.
	maxSummaryLength = 250
	// maxMetaDescriptionLength caps the length of SEO descriptions.
	maxMetaDescriptionLength = 160
)

// normalizeEditorType maps anything that is not exactly "markdown" to the
// block editor.
func normalizeEditorType(raw string) model.EditorType {
	if raw == string(model.EditorTypeMarkdown) {
		return model.EditorTypeMarkdown
	}

	return model.EditorTypeEditorJS
}

// normalizeStatus maps anything that is not exactly "published" to draft.
func normalizeStatus(raw string) model.PostStatus {
	if raw == string(model.PostStatusPublished) {
		return model.PostStatusPublished
	}

	return model.PostStatusDraft
}

// validateContent enforces the editor-type-dependent required field.
func validateContent(editorType model.EditorType, content string, blocks model.ContentBlocks) error {
	switch editorType {
	case model.EditorTypeMarkdown:
		if strings.TrimSpace(content) == "" {
			return errors.Wrap(httperr.ErrValidation, "content is required for markdown posts")
		}
	case model.EditorTypeEditorJS:
		if len(blocks.Blocks) == 0 {
			return errors.Wrap(httperr.ErrValidation, "contentBlocks must contain at least one block")
		}
	}

	return nil
}

// stampPublishedAt reports whether a status change must set the publish
// time: only the first transition to published stamps it, later updates
// leave the original value untouched.
func stampPublishedAt(status model.PostStatus, publishedAt *time.Time) bool {
	return status == model.PostStatusPublished && publishedAt == nil
}

// validateOptionalLimits checks the capped optional fields.
func validateOptionalLimits(summary, metaDescription string) error {
	if utf8.RuneCountInString(summary) > maxSummaryLength {
		return errors.Wrapf(httperr.ErrValidation, "summary exceeds %d chars", maxSummaryLength)
	}
	if utf8.RuneCountInString(metaDescription) > maxMetaDescriptionLength {
		return errors.Wrapf(httperr.ErrValidation, "metaDescription exceeds %d chars", maxMetaDescriptionLength)
	}

	return nil
}
