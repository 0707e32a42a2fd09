package main

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "shuvoedward/biblia/docs"
)

func (app *application) routes(handlers *Handlers) http.Handler {
	router := httprouter.New()

	router.RedirectFixedPath = false
	router.RedirectTrailingSlash = false

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/", app.landingPageHandler)
	router.Handler(http.MethodGet, "/static/*filepath", http.StripPrefix("/static", http.FileServerFS(staticFS)))

	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthcheckHandler)
	router.Handler(http.MethodGet, "/debug/vars", expvar.Handler())
	router.Handler(http.MethodGet, "/swagger/*any", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	handlers.Book.RegisterRoutes(router)

	return app.recoverPanic(app.metrics(app.rateLimit(router)))
}
