package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type VerseModel interface {
	InsertMany(ctx context.Context, verses []*Verse) error
	GetAllForChapter(ctx context.Context, bookSlug string, chapter int) ([]*Verse, error)
	Get(ctx context.Context, bookSlug string, chapter, number int) (*Verse, error)
	Search(ctx context.Context, query string, limit int) ([]*Verse, error)
	DeleteAll(ctx context.Context) error
}

// Verse carries the book and chapter it belongs to so a single row answers
// every read endpoint without joins.
type Verse struct {
	ObjectID      string `json:"_id"`
	ID            string `json:"id"`
	ChapterID     string `json:"chapter_id"`
	BookID        string `json:"book_id"`
	BookName      string `json:"book_name"`
	ChapterNumber int    `json:"chapter_number"`
	Number        int    `json:"number"`
	Text          string `json:"text"`
	Reference     string `json:"reference"`
}

const verseColumns = `_id::text, id, chapter_id, book_id, book_name, chapter_number, number, text, reference`

type verseModel struct {
	DB *sql.DB
}

func NewVerseModel(db *sql.DB) *verseModel {
	return &verseModel{DB: db}
}

// InsertMany writes a chapter worth of verses with a single COPY inside one
// transaction. The storage identities are not read back.
func (m *verseModel) InsertMany(ctx context.Context, verses []*Verse) error {
	if len(verses) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("verses",
		"id", "chapter_id", "book_id", "book_name", "chapter_number", "number", "text", "reference"))
	if err != nil {
		return err
	}

	for _, v := range verses {
		_, err = stmt.ExecContext(ctx, v.ID, v.ChapterID, v.BookID, v.BookName, v.ChapterNumber, v.Number, v.Text, v.Reference)
		if err != nil {
			stmt.Close()
			return fmt.Errorf("copy verse %s: %w", v.ID, err)
		}
	}

	// flush the buffered rows
	if _, err = stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return err
	}

	if err = stmt.Close(); err != nil {
		return err
	}

	return tx.Commit()
}

func (m *verseModel) GetAllForChapter(ctx context.Context, bookSlug string, chapter int) ([]*Verse, error) {
	query := `
		SELECT ` + verseColumns + `
		FROM verses
		WHERE book_id = $1 AND chapter_number = $2
		ORDER BY number ASC`

	return m.queryVerses(ctx, query, bookSlug, chapter)
}

func (m *verseModel) Get(ctx context.Context, bookSlug string, chapter, number int) (*Verse, error) {
	query := `
		SELECT ` + verseColumns + `
		FROM verses
		WHERE book_id = $1 AND chapter_number = $2 AND number = $3
		LIMIT 1`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var verse Verse
	err := m.DB.QueryRowContext(ctx, query, bookSlug, chapter, number).Scan(verseFields(&verse)...)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &verse, nil
}

// Search ranks verses against a web-style query (quoted phrases, OR, -word)
// using the Spanish text search configuration.
func (m *verseModel) Search(ctx context.Context, query string, limit int) ([]*Verse, error) {
	if limit < 1 || limit > SearchResultLimit {
		limit = SearchResultLimit
	}

	stmt := `
		SELECT ` + verseColumns + `
		FROM verses
		WHERE text_vector @@ websearch_to_tsquery('spanish', $1)
		ORDER BY ts_rank(text_vector, websearch_to_tsquery('spanish', $1)) DESC, _id ASC
		LIMIT $2`

	return m.queryVerses(ctx, stmt, query, limit)
}

func (m *verseModel) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := m.DB.ExecContext(ctx, `DELETE FROM verses`)
	return err
}

func (m *verseModel) queryVerses(ctx context.Context, query string, args ...any) ([]*Verse, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	verses := []*Verse{}
	for rows.Next() {
		var verse Verse
		if err := rows.Scan(verseFields(&verse)...); err != nil {
			return nil, err
		}
		verses = append(verses, &verse)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return verses, nil
}

func verseFields(v *Verse) []any {
	return []any{
		&v.ObjectID,
		&v.ID,
		&v.ChapterID,
		&v.BookID,
		&v.BookName,
		&v.ChapterNumber,
		&v.Number,
		&v.Text,
		&v.Reference,
	}
}
