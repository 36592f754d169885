package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
)

type envelope map[string]any

func (app *application) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	json, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	for key, values := range headers {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(json)

	return nil
}

func (app *application) readSlugParam(r *http.Request) string {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName("slug")
}

// readPageParam returns the requested page number, defaulting to 1 when the
// parameter is absent, non-numeric, or below 1. There is no upper bound: a
// page past the end simply renders empty.
func (app *application) readPageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

type postForm struct {
	Title   string
	Content string
}

func (app *application) parsePostForm(r *http.Request) (*postForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	return &postForm{
		Title:   r.PostForm.Get("title"),
		Content: r.PostForm.Get("content"),
	}, nil
}

// redirect issues a 303 so the browser follows a form POST with a GET.
func (app *application) redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}
