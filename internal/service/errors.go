package service

import "errors"

// Service-level errors, mapped to HTTP status codes by the handlers.
var (
	ErrBookNotFound  = errors.New("book not found")
	ErrVerseNotFound = errors.New("verse not found")
)
