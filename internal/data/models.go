package data

import (
	"database/sql"
	"errors"
	"time"
)

var (
	ErrRecordNotFound = errors.New("record not found")
)

// SearchResultLimit caps the number of verses a full text search returns.
const SearchResultLimit = 50

const queryTimeout = 3 * time.Second

type Models struct {
	Books    BookModel
	Chapters ChapterModel
	Verses   VerseModel
}

func NewModels(db *sql.DB) Models {
	return Models{
		Books:    NewBookModel(db),
		Chapters: NewChapterModel(db),
		Verses:   NewVerseModel(db),
	}
}
