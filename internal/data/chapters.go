package data

import (
	"context"
	"database/sql"
)

type ChapterModel interface {
	Insert(ctx context.Context, chapter *Chapter) error
	GetAllForBook(ctx context.Context, bookSlug string) ([]*Chapter, error)
	DeleteAll(ctx context.Context) error
}

type Chapter struct {
	ObjectID    string `json:"_id"`
	ID          string `json:"id"`
	BookID      string `json:"book_id"`
	Number      int    `json:"number"`
	Title       string `json:"title"`
	TotalVerses int    `json:"total_verses"`
}

type chapterModel struct {
	DB *sql.DB
}

func NewChapterModel(db *sql.DB) *chapterModel {
	return &chapterModel{DB: db}
}

func (m *chapterModel) Insert(ctx context.Context, chapter *Chapter) error {
	query := `
		INSERT INTO chapters (id, book_id, number, title, total_verses)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING _id::text`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	args := []any{chapter.ID, chapter.BookID, chapter.Number, chapter.Title, chapter.TotalVerses}
	return m.DB.QueryRowContext(ctx, query, args...).Scan(&chapter.ObjectID)
}

// GetAllForBook returns an empty slice, not ErrRecordNotFound, for a book
// with no imported chapters.
func (m *chapterModel) GetAllForBook(ctx context.Context, bookSlug string) ([]*Chapter, error) {
	query := `
		SELECT _id::text, id, book_id, number, title, total_verses
		FROM chapters
		WHERE book_id = $1
		ORDER BY number ASC`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query, bookSlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chapters := []*Chapter{}
	for rows.Next() {
		var chapter Chapter
		if err := rows.Scan(
			&chapter.ObjectID,
			&chapter.ID,
			&chapter.BookID,
			&chapter.Number,
			&chapter.Title,
			&chapter.TotalVerses,
		); err != nil {
			return nil, err
		}
		chapters = append(chapters, &chapter)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return chapters, nil
}

func (m *chapterModel) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := m.DB.ExecContext(ctx, `DELETE FROM chapters`)
	return err
}
