// Package content serves the narrative chapters of the course. Chapters are
// authored as markdown files in a content directory; LaTeX stays inline in
// the markdown ($...$ spans pass through untouched) and is typeset
// client-side.
package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var ErrChapterNotFound = errors.New("chapter not found")

// ChapterInfo identifies a chapter without its body.
type ChapterInfo struct {
	ID    string `json:"id"`   // file name without .md, e.g. "01-probabilities"
	Title string `json:"title"`
}

// Chapter is a fully rendered chapter.
type Chapter struct {
	ChapterInfo
	HTML string `json:"html"`
}

// Library reads and renders chapters from a directory.
type Library struct {
	dir string
	md  goldmark.Markdown
}

func NewLibrary(dir string) *Library {
	return &Library{
		dir: dir,
		md:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Dir returns the content directory path (for debugging).
func (l *Library) Dir() string { return l.dir }

// List returns the chapters in file-name order. File names carry a numeric
// prefix so lexical order is reading order.
func (l *Library) List() ([]ChapterInfo, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read content directory: %w", err)
	}

	infos := make([]ChapterInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".md")
		raw, err := os.ReadFile(filepath.Join(l.dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read chapter %s: %w", e.Name(), err)
		}
		infos = append(infos, ChapterInfo{ID: id, Title: titleOf(string(raw), id)})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos, nil
}

// Render reads one chapter and renders its markdown to HTML.
func (l *Library) Render(id string) (Chapter, error) {
	if id == "" || strings.ContainsAny(id, "/\\") || strings.Contains(id, "..") {
		return Chapter{}, fmt.Errorf("%w: %q", ErrChapterNotFound, id)
	}
	raw, err := os.ReadFile(filepath.Join(l.dir, id+".md"))
	if err != nil {
		if os.IsNotExist(err) {
			return Chapter{}, fmt.Errorf("%w: %q", ErrChapterNotFound, id)
		}
		return Chapter{}, fmt.Errorf("failed to read chapter %s: %w", id, err)
	}

	var buf strings.Builder
	if err := l.md.Convert(raw, &buf); err != nil {
		return Chapter{}, fmt.Errorf("failed to render chapter %s: %w", id, err)
	}

	return Chapter{
		ChapterInfo: ChapterInfo{ID: id, Title: titleOf(string(raw), id)},
		HTML:        buf.String(),
	}, nil
}

// titleOf extracts the first level-one heading, falling back to the id.
func titleOf(markdown, fallback string) string {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return fallback
}

// GetDefaultContentDir returns the chapter directory, env-overridable.
func GetDefaultContentDir() string {
	if dir := os.Getenv("CONTENT_DIR"); dir != "" {
		return dir
	}
	return "./content"
}
