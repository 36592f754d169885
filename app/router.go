package main

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

//go:embed public
var publicFS embed.FS

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/", app.listPostsHandler)
	router.HandlerFunc(http.MethodGet, "/search", app.searchPostsHandler)
	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthCheckHandler)

	router.HandlerFunc(http.MethodPost, "/post", app.createPostHandler)
	// httprouter rejects a static /post/new next to /post/:slug, so the
	// slug handler dispatches "new" to the create form itself.
	router.HandlerFunc(http.MethodGet, "/post/:slug", app.showPostHandler)
	router.HandlerFunc(http.MethodGet, "/post/:slug/edit", app.editPostFormHandler)
	router.HandlerFunc(http.MethodPost, "/post/:slug/edit", app.updatePostHandler)
	router.HandlerFunc(http.MethodPost, "/post/:slug/delete", app.deletePostHandler)

	static, err := fs.Sub(publicFS, "public")
	if err != nil {
		panic(err)
	}
	router.ServeFiles("/public/*filepath", http.FS(static))

	return app.recoverPanic(app.logRequest(app.rateLimit(app.enableCORS(router))))
}
