package service

import (
	"log/slog"

	"shuvoedward/biblia/internal/data"
)

// Service contains all business logic services
type Service struct {
	Book *BookService
}

// NewServices creates all services with their dependencies
func NewServices(
	models data.Models,
	logger *slog.Logger,
	books map[string]struct{},
) *Service {
	return &Service{
		Book: NewBookService(
			models.Books,
			models.Chapters,
			models.Verses,
			NewBibleValidator(books),
			logger,
		),
	}
}
