package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	require.Empty(t, renderMarkdown(""))

	out := renderMarkdown("# Title\n\nsome *emphasis*")
	require.Contains(t, out, "<h1")
	require.Contains(t, out, "<em>emphasis</em>")

	out = renderMarkdown("[link](https://example.com)")
	require.Contains(t, out, `target="_blank"`)
}

func TestDedupeTags(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		[]string{"go", "gin", "mongo"},
		dedupeTags([]string{"go", " gin ", "go", "", "mongo", "gin"}))
	require.Empty(t, dedupeTags(nil))
	require.Empty(t, dedupeTags([]string{"", "  "}))
}
