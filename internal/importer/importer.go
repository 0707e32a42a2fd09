// Package importer rebuilds the books, chapters and verses tables from the
// book catalog and a directory of per-chapter HTML pages.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/google/uuid"

	"shuvoedward/biblia/internal/catalog"
	"shuvoedward/biblia/internal/data"
)

// DefaultSourceDir is where the chapter pages live relative to the working
// directory.
const DefaultSourceDir = "bible-source"

// Summary is the outcome of one import run.
type Summary struct {
	RunID             string
	Books             int
	Chapters          int
	Verses            int
	MissingFiles      int
	EmptyChapters     int
	DroppedParagraphs int
}

type Importer struct {
	models       data.Models
	ensureSchema func() error
	books        []catalog.Book
	logger       *slog.Logger
}

// New returns an importer over the full catalog. ensureSchema is called at
// the start of every run to create missing tables and indexes.
func New(models data.Models, ensureSchema func() error, logger *slog.Logger) *Importer {
	return &Importer{
		models:       models,
		ensureSchema: ensureSchema,
		books:        catalog.Books,
		logger:       logger,
	}
}

// Run clears every table and loads the catalog again, reading chapter pages
// named "<slug><chapter>.html" from source.
//
// Missing or empty chapter pages are logged and skipped. Any storage error
// stops the run and is returned; rows written before it stay in place.
func (im *Importer) Run(ctx context.Context, source fs.FS) (Summary, error) {
	summary := Summary{RunID: uuid.NewString()}
	logger := im.logger.With("run_id", summary.RunID)

	if err := im.ensureSchema(); err != nil {
		return summary, fmt.Errorf("ensure schema: %w", err)
	}

	logger.Info("clearing existing collections")
	if err := im.clear(ctx); err != nil {
		return summary, err
	}

	for _, cb := range im.books {
		logger.Info("processing book", "book", cb.Name)

		book := &data.Book{
			ID:            cb.Slug,
			Slug:          cb.Slug,
			Name:          cb.Name,
			Testament:     string(cb.Testament),
			Order:         cb.Order,
			TotalChapters: cb.Chapters,
		}
		if err := im.models.Books.Insert(ctx, book); err != nil {
			return summary, fmt.Errorf("insert book %s: %w", cb.Slug, err)
		}
		summary.Books++

		for number := 1; number <= cb.Chapters; number++ {
			if err := im.importChapter(ctx, logger, source, cb, number, &summary); err != nil {
				return summary, err
			}
		}
	}

	logger.Info("import completed",
		"books", summary.Books,
		"chapters", summary.Chapters,
		"verses", summary.Verses,
		"missing_files", summary.MissingFiles,
		"empty_chapters", summary.EmptyChapters,
		"dropped_paragraphs", summary.DroppedParagraphs,
	)

	return summary, nil
}

func (im *Importer) clear(ctx context.Context) error {
	if err := im.models.Verses.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear verses: %w", err)
	}
	if err := im.models.Chapters.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear chapters: %w", err)
	}
	if err := im.models.Books.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear books: %w", err)
	}
	return nil
}

func (im *Importer) importChapter(
	ctx context.Context,
	logger *slog.Logger,
	source fs.FS,
	cb catalog.Book,
	number int,
	summary *Summary,
) error {
	name := fmt.Sprintf("%s%d.html", cb.Slug, number)

	parsed, err := parseFile(source, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("source file not found", "file", name)
			summary.MissingFiles++
			return nil
		}
		logger.Error("failed to parse source file", "file", name, "error", err)
		parsed = ParseResult{}
	}

	if parsed.Dropped > 0 {
		logger.Warn("dropped paragraphs without verse number", "file", name, "count", parsed.Dropped)
		summary.DroppedParagraphs += parsed.Dropped
	}

	if len(parsed.Verses) == 0 {
		logger.Warn("no verses found", "file", name)
		summary.EmptyChapters++
		return nil
	}

	chapterID := fmt.Sprintf("%s_%d", cb.Slug, number)
	chapter := &data.Chapter{
		ID:          chapterID,
		BookID:      cb.Slug,
		Number:      number,
		Title:       fmt.Sprintf("%s %d", cb.Name, number),
		TotalVerses: len(parsed.Verses),
	}
	if err := im.models.Chapters.Insert(ctx, chapter); err != nil {
		return fmt.Errorf("insert chapter %s: %w", chapterID, err)
	}
	summary.Chapters++

	verses := make([]*data.Verse, 0, len(parsed.Verses))
	for _, pv := range parsed.Verses {
		verses = append(verses, &data.Verse{
			ID:            fmt.Sprintf("%s_%d", chapterID, pv.Number),
			ChapterID:     chapterID,
			BookID:        cb.Slug,
			BookName:      cb.Name,
			ChapterNumber: number,
			Number:        pv.Number,
			Text:          pv.Text,
			Reference:     fmt.Sprintf("%s %d:%d", cb.Name, number, pv.Number),
		})
	}
	if err := im.models.Verses.InsertMany(ctx, verses); err != nil {
		return fmt.Errorf("insert verses of %s: %w", chapterID, err)
	}
	summary.Verses += len(verses)

	logger.Info("imported chapter", "chapter", chapter.Title, "verses", len(verses))
	return nil
}

func parseFile(source fs.FS, name string) (ParseResult, error) {
	f, err := source.Open(name)
	if err != nil {
		return ParseResult{}, err
	}
	defer f.Close()

	return ParseChapter(f)
}
