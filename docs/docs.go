// Package docs registers the swagger document for the Biblia API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "shuvoedward@gmail.com"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/books": {
            "get": {
                "description": "Returns every book ordered by canonical order.",
                "produces": ["application/json"],
                "tags": ["Books"],
                "summary": "List books",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"books": {"type": "array", "items": {"$ref": "#/definitions/data.Book"}}}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/main.errorBody"}}
                }
            }
        },
        "/books/{book_id}": {
            "get": {
                "description": "Returns one book by slug.",
                "produces": ["application/json"],
                "tags": ["Books"],
                "summary": "Get a book",
                "parameters": [
                    {"type": "string", "description": "Book slug (e.g. genesis)", "name": "book_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"book": {"$ref": "#/definitions/data.Book"}}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/main.errorBody"}}
                }
            }
        },
        "/books/{book_id}/chapters": {
            "get": {
                "description": "Returns the imported chapters of a book ordered by number.",
                "produces": ["application/json"],
                "tags": ["Chapters"],
                "summary": "List chapters of a book",
                "parameters": [
                    {"type": "string", "description": "Book slug", "name": "book_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"chapters": {"type": "array", "items": {"$ref": "#/definitions/data.Chapter"}}}}}
                }
            }
        },
        "/books/{book_id}/chapters/{chapter_number}/verses": {
            "get": {
                "description": "Returns the verses of a chapter ordered by number.",
                "produces": ["application/json"],
                "tags": ["Verses"],
                "summary": "List verses of a chapter",
                "parameters": [
                    {"type": "string", "description": "Book slug", "name": "book_id", "in": "path", "required": true},
                    {"type": "integer", "description": "Chapter number", "name": "chapter_number", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"verses": {"type": "array", "items": {"$ref": "#/definitions/data.Verse"}}}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/main.errorBody"}}
                }
            }
        },
        "/books/{book_id}/chapters/{chapter_number}/verses/{verse_number}": {
            "get": {
                "description": "Returns one verse.",
                "produces": ["application/json"],
                "tags": ["Verses"],
                "summary": "Get a verse",
                "parameters": [
                    {"type": "string", "description": "Book slug", "name": "book_id", "in": "path", "required": true},
                    {"type": "integer", "description": "Chapter number", "name": "chapter_number", "in": "path", "required": true},
                    {"type": "integer", "description": "Verse number", "name": "verse_number", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"verse": {"$ref": "#/definitions/data.Verse"}}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/main.errorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/main.errorBody"}}
                }
            }
        },
        "/search": {
            "get": {
                "description": "Full text search over verse text, ranked by relevance, at most 50 results.",
                "produces": ["application/json"],
                "tags": ["Search"],
                "summary": "Search verses",
                "parameters": [
                    {"type": "string", "description": "Search words or phrase", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"verses": {"type": "array", "items": {"$ref": "#/definitions/data.Verse"}}}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/main.errorBody"}}
                }
            }
        }
    },
    "definitions": {
        "data.Book": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "id": {"type": "string"},
                "slug": {"type": "string"},
                "name": {"type": "string"},
                "testament": {"type": "string", "enum": ["Old", "New"]},
                "order": {"type": "integer"},
                "total_chapters": {"type": "integer"}
            }
        },
        "data.Chapter": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "id": {"type": "string"},
                "book_id": {"type": "string"},
                "number": {"type": "integer"},
                "title": {"type": "string"},
                "total_verses": {"type": "integer"}
            }
        },
        "data.Verse": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "id": {"type": "string"},
                "chapter_id": {"type": "string"},
                "book_id": {"type": "string"},
                "book_name": {"type": "string"},
                "chapter_number": {"type": "integer"},
                "number": {"type": "integer"},
                "text": {"type": "string"},
                "reference": {"type": "string"}
            }
        },
        "main.errorBody": {
            "type": "object",
            "properties": {
                "error": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:4000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Biblia API",
	Description:      "Read-only API over the books, chapters and verses of the Bible, with full text search",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
