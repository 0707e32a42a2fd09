package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"shuvoedward/biblia/internal/data"
	"shuvoedward/biblia/internal/service"
	"shuvoedward/biblia/internal/validator"
)

type BookServiceInterface interface {
	ListBooks(ctx context.Context) ([]*data.Book, error)
	GetBook(ctx context.Context, slug string) (*data.Book, error)
	ListChapters(ctx context.Context, slug string) ([]*data.Chapter, error)
	ListVerses(ctx context.Context, slug string, chapter int) ([]*data.Verse, error)
	GetVerse(ctx context.Context, slug string, chapter, number int) (*data.Verse, error)
	SearchVerses(ctx context.Context, query string) ([]*data.Verse, *validator.Validator, error)
}

type BookHandler struct {
	app         *application
	bookService BookServiceInterface
}

func NewBookHandler(app *application, bookService BookServiceInterface) *BookHandler {
	return &BookHandler{
		app:         app,
		bookService: bookService,
	}
}

func (h *BookHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/books", h.ListBooks)
	router.HandlerFunc(http.MethodGet, "/books/:book_id", h.GetBook)
	router.HandlerFunc(http.MethodGet, "/books/:book_id/chapters", h.ListChapters)
	router.HandlerFunc(http.MethodGet, "/books/:book_id/chapters/:chapter_number/verses", h.ListVerses)
	router.HandlerFunc(http.MethodGet, "/books/:book_id/chapters/:chapter_number/verses/:verse_number", h.GetVerse)
	router.HandlerFunc(http.MethodGet, "/search", h.Search)
}

func (h *BookHandler) handleBooksError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrBookNotFound), errors.Is(err, service.ErrVerseNotFound):
		h.app.notFoundResponse(w, r)
	default:
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary List books
// @Description Returns every book ordered by canonical order (Génesis first, Apocalipsis last).
// @Tags Books
// @Produce json
// @Success 200 {object} object{books=[]data.Book}
// @Failure 500 {object} object{error=string} "Internal server error"
// @Router /books [get]
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.ListBooks(r.Context())
	if err != nil {
		h.handleBooksError(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"books": books}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Get a book
// @Tags Books
// @Produce json
// @Param book_id path string true "Book slug (e.g., genesis)"
// @Success 200 {object} object{book=data.Book}
// @Failure 404 {object} object{error=string} "Book not found"
// @Failure 500 {object} object{error=string} "Internal server error"
// @Router /books/{book_id} [get]
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.bookService.GetBook(r.Context(), h.app.readStringParam(r, "book_id"))
	if err != nil {
		h.handleBooksError(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"book": book}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary List chapters of a book
// @Description Returns the imported chapters ordered by number. A book without imported chapters gives an empty list.
// @Tags Chapters
// @Produce json
// @Param book_id path string true "Book slug"
// @Success 200 {object} object{chapters=[]data.Chapter}
// @Failure 500 {object} object{error=string} "Internal server error"
// @Router /books/{book_id}/chapters [get]
func (h *BookHandler) ListChapters(w http.ResponseWriter, r *http.Request) {
	chapters, err := h.bookService.ListChapters(r.Context(), h.app.readStringParam(r, "book_id"))
	if err != nil {
		h.handleBooksError(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"chapters": chapters}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary List verses of a chapter
// @Tags Verses
// @Produce json
// @Param book_id path string true "Book slug"
// @Param chapter_number path int true "Chapter number"
// @Success 200 {object} object{verses=[]data.Verse}
// @Failure 400 {object} object{error=string} "Chapter number is not an integer"
// @Failure 500 {object} object{error=string} "Internal server error"
// @Router /books/{book_id}/chapters/{chapter_number}/verses [get]
func (h *BookHandler) ListVerses(w http.ResponseWriter, r *http.Request) {
	chapter, err := h.app.readIntParam(r, "chapter_number")
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	verses, err := h.bookService.ListVerses(r.Context(), h.app.readStringParam(r, "book_id"), chapter)
	if err != nil {
		h.handleBooksError(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"verses": verses}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Get a verse
// @Tags Verses
// @Produce json
// @Param book_id path string true "Book slug"
// @Param chapter_number path int true "Chapter number"
// @Param verse_number path int true "Verse number"
// @Success 200 {object} object{verse=data.Verse}
// @Failure 400 {object} object{error=string} "Chapter or verse number is not an integer"
// @Failure 404 {object} object{error=string} "Verse not found"
// @Failure 500 {object} object{error=string} "Internal server error"
// @Router /books/{book_id}/chapters/{chapter_number}/verses/{verse_number} [get]
func (h *BookHandler) GetVerse(w http.ResponseWriter, r *http.Request) {
	chapter, err := h.app.readIntParam(r, "chapter_number")
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	number, err := h.app.readIntParam(r, "verse_number")
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	verse, err := h.bookService.GetVerse(r.Context(), h.app.readStringParam(r, "book_id"), chapter, number)
	if err != nil {
		h.handleBooksError(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"verse": verse}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Search verses
// @Description Full text search over verse text ranked by relevance. Returns at most 50 verses.
// @Tags Search
// @Produce json
// @Param q query string true "Search words or phrase (e.g., 'luz', '\"en el principio\"')"
// @Success 200 {object} object{verses=[]data.Verse}
// @Failure 422 {object} object{error=object} "Query is empty or too long"
// @Failure 500 {object} object{error=string} "Internal server error"
// @Router /search [get]
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	verses, v, err := h.bookService.SearchVerses(r.Context(), r.URL.Query().Get("q"))
	if v != nil && !v.Valid() {
		h.app.failedValidationResponse(w, r, v.Errors)
		return
	}

	if err != nil {
		h.handleBooksError(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"verses": verses}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}
