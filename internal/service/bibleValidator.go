package service

import "shuvoedward/biblia/internal/validator"

// MaxSearchQueryLength bounds the text sent to the full text search.
const MaxSearchQueryLength = 100

// BibleValidator knows the catalog slugs so lookups of books that can never
// exist skip the database.
type BibleValidator struct {
	books map[string]struct{}
}

func NewBibleValidator(books map[string]struct{}) *BibleValidator {
	return &BibleValidator{books: books}
}

func (bv *BibleValidator) KnownBook(slug string) bool {
	_, ok := bv.books[slug]
	return ok
}

func (bv *BibleValidator) ValidateSearchQuery(v *validator.Validator, query string) {
	v.Check(query != "", "q", "must be provided")
	v.Check(validator.MaxChars(query, MaxSearchQueryLength), "q", "must not be more than 100 characters long")
}
