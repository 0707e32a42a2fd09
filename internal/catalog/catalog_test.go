package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shuvoedward/biblia/internal/catalog"
)

func TestBooks(t *testing.T) {
	t.Parallel()

	require.Len(t, catalog.Books, 66)

	seen := make(map[string]bool)
	counts := make(map[catalog.Testament]int)
	for i, b := range catalog.Books {
		assert.Equal(t, i+1, b.Order, "book %s out of order", b.Slug)
		assert.False(t, seen[b.Slug], "duplicate slug %s", b.Slug)
		assert.Positive(t, b.Chapters, "book %s has no chapters", b.Slug)
		assert.NotEmpty(t, b.Name)
		seen[b.Slug] = true
		counts[b.Testament]++
	}

	assert.Equal(t, 39, counts[catalog.Old])
	assert.Equal(t, 27, counts[catalog.New])
}

func TestBooks_ChapterCounts(t *testing.T) {
	t.Parallel()

	chapters := make(map[string]int, len(catalog.Books))
	for _, b := range catalog.Books {
		chapters[b.Slug] = b.Chapters
	}

	tests := []struct {
		slug     string
		chapters int
	}{
		{"genesis", 50},
		{"salmos", 150},
		{"1cronicas", 29},
		{"2cronicas", 29},
		{"abdias", 1},
		{"apocalipsis", 22},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.chapters, chapters[tt.slug], "book %s", tt.slug)
	}
}

func TestSlugs(t *testing.T) {
	t.Parallel()

	slugs := catalog.Slugs()
	assert.Len(t, slugs, 66)
	assert.Contains(t, slugs, "apocalipsis")
}
