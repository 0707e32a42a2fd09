package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"shuvoedward/biblia/internal/data"
	"shuvoedward/biblia/internal/ratelimit"
)

func serve(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()

	if err := json.Unmarshal(rr.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to unmarshal response body: %v", err)
	}
}

func TestRoutes_StatusCodes(t *testing.T) {
	router := testApp.routes(testHandlers)

	tests := []struct {
		name           string
		target         string
		expectedStatus int
	}{
		{"landing page", "/", http.StatusOK},
		{"static asset", "/static/app.js", http.StatusOK},
		{"list books", "/books", http.StatusOK},
		{"get book", "/books/genesis", http.StatusOK},
		{"unknown book", "/books/unknownslug", http.StatusNotFound},
		{"catalog book not imported", "/books/exodo", http.StatusNotFound},
		{"list chapters", "/books/genesis/chapters", http.StatusOK},
		{"list verses", "/books/genesis/chapters/1/verses", http.StatusOK},
		{"chapter not a number", "/books/genesis/chapters/uno/verses", http.StatusBadRequest},
		{"get verse", "/books/genesis/chapters/1/verses/3", http.StatusOK},
		{"missing verse", "/books/genesis/chapters/1/verses/99", http.StatusNotFound},
		{"verse not a number", "/books/genesis/chapters/1/verses/x", http.StatusBadRequest},
		{"verses of huge chapter", "/books/genesis/chapters/3000000000/verses", http.StatusOK},
		{"verse in huge chapter", "/books/genesis/chapters/3000000000/verses/1", http.StatusNotFound},
		{"huge verse number", "/books/genesis/chapters/1/verses/3000000000", http.StatusNotFound},
		{"number beyond int64", "/books/genesis/chapters/99999999999999999999/verses", http.StatusBadRequest},
		{"search", "/search?q=luz", http.StatusOK},
		{"search without query", "/search", http.StatusUnprocessableEntity},
		{"healthcheck", "/healthcheck", http.StatusOK},
		{"unknown route", "/capitulos", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, router, tt.target)
			if rr.Code != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, tt.expectedStatus)
			}
		})
	}
}

func TestBookHandler_ListBooks(t *testing.T) {
	rr := serve(t, testApp.routes(testHandlers), "/books")

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var actual struct {
		Books []data.Book `json:"books"`
	}
	decode(t, rr, &actual)

	if len(actual.Books) != 3 {
		t.Fatalf("expected 3 books, got %d", len(actual.Books))
	}
	if actual.Books[0].Order != 1 || actual.Books[0].Slug != "genesis" {
		t.Errorf("expected the first book to have order 1, got %+v", actual.Books[0])
	}
	for i := 1; i < len(actual.Books); i++ {
		if actual.Books[i-1].Order > actual.Books[i].Order {
			t.Errorf("books not ordered: %d before %d", actual.Books[i-1].Order, actual.Books[i].Order)
		}
	}
}

func TestBookHandler_GetBook_ObjectIDIsString(t *testing.T) {
	rr := serve(t, testApp.routes(testHandlers), "/books/genesis")

	var raw struct {
		Book map[string]any `json:"book"`
	}
	decode(t, rr, &raw)

	id, ok := raw.Book["_id"].(string)
	if !ok || id != "1" {
		t.Errorf("expected _id to be the string \"1\", got %#v", raw.Book["_id"])
	}
}

func TestBookHandler_NotFoundBody(t *testing.T) {
	rr := serve(t, testApp.routes(testHandlers), "/books/unknownslug")

	var body struct {
		Error string `json:"error"`
	}
	decode(t, rr, &body)

	if body.Error != "the requested resource could not be found" {
		t.Errorf("unexpected error message %q", body.Error)
	}
}

func TestBookHandler_ListChapters_UnknownBookIsEmpty(t *testing.T) {
	rr := serve(t, testApp.routes(testHandlers), "/books/unknownslug/chapters")

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), `"chapters": []`) {
		t.Errorf("expected an empty chapters list, got %s", rr.Body.String())
	}
}

func TestBookHandler_ListVerses(t *testing.T) {
	rr := serve(t, testApp.routes(testHandlers), "/books/genesis/chapters/1/verses")

	var actual struct {
		Verses []data.Verse `json:"verses"`
	}
	decode(t, rr, &actual)

	if len(actual.Verses) != 3 {
		t.Fatalf("expected 3 verses, got %d", len(actual.Verses))
	}
	for i, v := range actual.Verses {
		if v.Number != i+1 {
			t.Errorf("expected verse number %d, got %d", i+1, v.Number)
		}
	}
	if actual.Verses[2].Reference != "Génesis 1:3" {
		t.Errorf("unexpected reference %q", actual.Verses[2].Reference)
	}
}

func TestBookHandler_GetVerse(t *testing.T) {
	rr := serve(t, testApp.routes(testHandlers), "/books/genesis/chapters/1/verses/1")

	var actual struct {
		Verse data.Verse `json:"verse"`
	}
	decode(t, rr, &actual)

	if actual.Verse.ID != "genesis_1_1" || actual.Verse.Text != "En el principio creó Dios los cielos y la tierra." {
		t.Errorf("unexpected verse %+v", actual.Verse)
	}
}

func TestBookHandler_Search(t *testing.T) {
	router := testApp.routes(testHandlers)

	t.Run("only matching verses", func(t *testing.T) {
		rr := serve(t, router, "/search?q=luz")

		var actual struct {
			Verses []data.Verse `json:"verses"`
		}
		decode(t, rr, &actual)

		if len(actual.Verses) != 1 {
			t.Fatalf("expected 1 verse, got %d", len(actual.Verses))
		}
		if !strings.Contains(actual.Verses[0].Text, "luz") {
			t.Errorf("verse does not contain the term: %q", actual.Verses[0].Text)
		}
	})

	t.Run("capped", func(t *testing.T) {
		rr := serve(t, router, "/search?q=ley")

		var actual struct {
			Verses []data.Verse `json:"verses"`
		}
		decode(t, rr, &actual)

		if len(actual.Verses) > data.SearchResultLimit {
			t.Errorf("expected at most %d verses, got %d", data.SearchResultLimit, len(actual.Verses))
		}
	})

	t.Run("blank query", func(t *testing.T) {
		rr := serve(t, router, "/search?q="+url.QueryEscape("   "))

		if rr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusUnprocessableEntity)
		}

		var body struct {
			Error map[string]string `json:"error"`
		}
		decode(t, rr, &body)
		if body.Error["q"] == "" {
			t.Errorf("expected a validation error for q, got %s", rr.Body.String())
		}
	})
}

func TestHealthcheck_LastImport(t *testing.T) {
	rr := serve(t, testApp.routes(testHandlers), "/healthcheck")

	var actual struct {
		Status     string            `json:"status"`
		SystemInfo map[string]string `json:"system_info"`
		LastImport struct {
			Verses int `json:"verses"`
		} `json:"last_import"`
	}
	decode(t, rr, &actual)

	if actual.Status != "available" || actual.SystemInfo["environment"] != "testing" {
		t.Errorf("unexpected healthcheck %s", rr.Body.String())
	}
	if actual.LastImport.Verses != 31102 {
		t.Errorf("expected last import verses to be reported, got %d", actual.LastImport.Verses)
	}
}

func TestRateLimit(t *testing.T) {
	app := &application{
		config:        config{env: "testing"},
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		ipRateLimiter: ratelimit.NewRateLimiter(2, time.Minute),
	}
	defer app.ipRateLimiter.Stop()

	router := app.routes(NewHandlers(app, newTestServices()))

	for i := range 2 {
		if rr := serve(t, router, "/books"); rr.Code != http.StatusOK {
			t.Fatalf("request %d: got %v want %v", i+1, rr.Code, http.StatusOK)
		}
	}

	if rr := serve(t, router, "/books"); rr.Code != http.StatusTooManyRequests {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusTooManyRequests)
	}
}

func TestRecoverPanic(t *testing.T) {
	h := testApp.recoverPanic(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := serve(t, h, "/")

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusInternalServerError)
	}
	if rr.Header().Get("Connection") != "close" {
		t.Error("expected Connection: close header")
	}
}
