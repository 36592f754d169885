package main

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"

	"github.com/caiofernandes/blogo/internal/postservice"
)

//go:embed views
var viewsFS embed.FS

type templateData struct {
	Title       string
	Post        *postservice.Post
	Page        *postservice.PostPage
	SearchQuery string
}

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
	// raw renders stored content verbatim, without escaping
	"raw": func(s string) template.HTML { return template.HTML(s) },
}

func newTemplateCache() (map[string]*template.Template, error) {
	cache := map[string]*template.Template{}

	pages, err := fs.Glob(viewsFS, "views/pages/*.tmpl")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := filepath.Base(page)

		ts, err := template.New(name).Funcs(templateFuncs).ParseFS(viewsFS, "views/base.tmpl", page)
		if err != nil {
			return nil, err
		}

		cache[name] = ts
	}

	return cache, nil
}

func (app *application) render(w http.ResponseWriter, r *http.Request, status int, page string, data templateData) {
	ts, ok := app.templateCache[page]
	if !ok {
		app.serverErrorResponse(w, r, fmt.Errorf("the template %s does not exist", page))
		return
	}

	// render into a buffer first so a template error never produces a
	// half-written page
	var buf bytes.Buffer
	err := ts.ExecuteTemplate(&buf, "base", data)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
