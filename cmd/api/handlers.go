package main

import "shuvoedward/biblia/internal/service"

// Handlers contains all HTTP handlers
type Handlers struct {
	Book *BookHandler
}

// NewHandlers creates all HTTP handlers
func NewHandlers(app *application, services *service.Service) *Handlers {
	return &Handlers{
		Book: NewBookHandler(app, services.Book),
	}
}
