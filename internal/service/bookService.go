package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"

	"shuvoedward/biblia/internal/data"
	"shuvoedward/biblia/internal/validator"
)

// BookService answers every read of the books, chapters and verses
// collections. It holds no state between calls.
type BookService struct {
	bookModel    data.BookModel
	chapterModel data.ChapterModel
	verseModel   data.VerseModel
	validator    *BibleValidator
	logger       *slog.Logger
}

func NewBookService(
	bookModel data.BookModel,
	chapterModel data.ChapterModel,
	verseModel data.VerseModel,
	validator *BibleValidator,
	logger *slog.Logger,
) *BookService {
	return &BookService{
		bookModel:    bookModel,
		chapterModel: chapterModel,
		verseModel:   verseModel,
		validator:    validator,
		logger:       logger,
	}
}

func (s *BookService) ListBooks(ctx context.Context) ([]*data.Book, error) {
	return s.bookModel.GetAll(ctx)
}

func (s *BookService) GetBook(ctx context.Context, slug string) (*data.Book, error) {
	if !s.validator.KnownBook(slug) {
		return nil, ErrBookNotFound
	}

	book, err := s.bookModel.Get(ctx, slug)
	if err != nil {
		if errors.Is(err, data.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	return book, nil
}

// ListChapters returns an empty list for a book without imported chapters,
// including unknown books.
func (s *BookService) ListChapters(ctx context.Context, slug string) ([]*data.Chapter, error) {
	if !s.validator.KnownBook(slug) {
		return []*data.Chapter{}, nil
	}

	return s.chapterModel.GetAllForBook(ctx, slug)
}

func (s *BookService) ListVerses(ctx context.Context, slug string, chapter int) ([]*data.Verse, error) {
	if !s.validator.KnownBook(slug) || !storableNumber(chapter) {
		return []*data.Verse{}, nil
	}

	return s.verseModel.GetAllForChapter(ctx, slug, chapter)
}

func (s *BookService) GetVerse(ctx context.Context, slug string, chapter, number int) (*data.Verse, error) {
	if !s.validator.KnownBook(slug) || !storableNumber(chapter) || !storableNumber(number) {
		return nil, ErrVerseNotFound
	}

	verse, err := s.verseModel.Get(ctx, slug, chapter, number)
	if err != nil {
		if errors.Is(err, data.ErrRecordNotFound) {
			return nil, ErrVerseNotFound
		}
		return nil, err
	}

	return verse, nil
}

// storableNumber reports whether n can name a chapter or verse. The columns
// are 32-bit integers, so larger values can never match a row.
func storableNumber(n int) bool {
	return n >= 1 && n <= math.MaxInt32
}

// SearchVerses runs a full text search capped at data.SearchResultLimit.
// A non-nil, invalid validator means the query was rejected.
func (s *BookService) SearchVerses(ctx context.Context, query string) ([]*data.Verse, *validator.Validator, error) {
	query = strings.TrimSpace(query)

	v := validator.New()
	s.validator.ValidateSearchQuery(v, query)
	if !v.Valid() {
		return nil, v, nil
	}

	verses, err := s.verseModel.Search(ctx, query, data.SearchResultLimit)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Debug("search completed", "query", query, "results", len(verses))

	return verses, nil, nil
}
