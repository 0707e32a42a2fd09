package data

import (
	"context"
	"database/sql"
	"errors"
)

type BookModel interface {
	Insert(ctx context.Context, book *Book) error
	GetAll(ctx context.Context) ([]*Book, error)
	Get(ctx context.Context, slug string) (*Book, error)
	DeleteAll(ctx context.Context) error
}

// Book is one of the 66 catalog books. ObjectID is the storage identity,
// always exposed as a string.
type Book struct {
	ObjectID      string `json:"_id"`
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	Testament     string `json:"testament"`
	Order         int    `json:"order"`
	TotalChapters int    `json:"total_chapters"`
}

type bookModel struct {
	DB *sql.DB
}

func NewBookModel(db *sql.DB) *bookModel {
	return &bookModel{DB: db}
}

func (m *bookModel) Insert(ctx context.Context, book *Book) error {
	query := `
		INSERT INTO books (id, slug, name, testament, "order", total_chapters)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING _id::text`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	args := []any{book.ID, book.Slug, book.Name, book.Testament, book.Order, book.TotalChapters}
	return m.DB.QueryRowContext(ctx, query, args...).Scan(&book.ObjectID)
}

func (m *bookModel) GetAll(ctx context.Context) ([]*Book, error) {
	query := `
		SELECT _id::text, id, slug, name, testament, "order", total_chapters
		FROM books
		ORDER BY "order" ASC`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []*Book{}
	for rows.Next() {
		var book Book
		if err := rows.Scan(
			&book.ObjectID,
			&book.ID,
			&book.Slug,
			&book.Name,
			&book.Testament,
			&book.Order,
			&book.TotalChapters,
		); err != nil {
			return nil, err
		}
		books = append(books, &book)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return books, nil
}

func (m *bookModel) Get(ctx context.Context, slug string) (*Book, error) {
	query := `
		SELECT _id::text, id, slug, name, testament, "order", total_chapters
		FROM books
		WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var book Book
	err := m.DB.QueryRowContext(ctx, query, slug).Scan(
		&book.ObjectID,
		&book.ID,
		&book.Slug,
		&book.Name,
		&book.Testament,
		&book.Order,
		&book.TotalChapters,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &book, nil
}

func (m *bookModel) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := m.DB.ExecContext(ctx, `DELETE FROM books`)
	return err
}
