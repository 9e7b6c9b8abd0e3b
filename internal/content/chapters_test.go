package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
	}
	write("01-intro.md", "# Climate Change and Asset Pricing\n\nPrices reflect expected discounted cash flows: $P_t = \\mathbb{E}_t[m_{t+1} CF_{t+1}]$.\n")
	write("02-probabilities.md", "# Assigning Probabilities\n\n| Scenario | Prob |\n|---|---|\n| Net Zero | 0.1 |\n")
	write("notes.txt", "not a chapter")
	return NewLibrary(dir)
}

func TestListChapters(t *testing.T) {
	lib := newTestLibrary(t)
	infos, err := lib.List()
	require.NoError(t, err)
	require.Len(t, infos, 2)

	assert.Equal(t, "01-intro", infos[0].ID)
	assert.Equal(t, "Climate Change and Asset Pricing", infos[0].Title)
	assert.Equal(t, "02-probabilities", infos[1].ID)
}

func TestRenderChapter(t *testing.T) {
	lib := newTestLibrary(t)
	ch, err := lib.Render("01-intro")
	require.NoError(t, err)

	assert.Contains(t, ch.HTML, "<h1>Climate Change and Asset Pricing</h1>")
	// LaTeX spans pass through for client-side typesetting.
	assert.Contains(t, ch.HTML, "m_{t+1}")

	// GFM tables render.
	ch, err = lib.Render("02-probabilities")
	require.NoError(t, err)
	assert.Contains(t, ch.HTML, "<table>")
}

func TestRenderMissingChapter(t *testing.T) {
	lib := newTestLibrary(t)
	_, err := lib.Render("99-missing")
	assert.ErrorIs(t, err, ErrChapterNotFound)

	_, err = lib.Render("../escape")
	assert.ErrorIs(t, err, ErrChapterNotFound)
}
