package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/caiofernandes/blogo/internal/common"
	"github.com/caiofernandes/blogo/internal/postservice"
)

func (app *application) listPostsHandler(w http.ResponseWriter, r *http.Request) {
	page, err := app.postService.ListPosts(r.Context(), app.readPageParam(r))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "index.tmpl", templateData{
		Title: "Blog Posts",
		Page:  page,
	})
}

func (app *application) searchPostsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	page, err := app.postService.SearchPosts(r.Context(), q, app.readPageParam(r))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	title := "All Posts"
	if strings.TrimSpace(q) != "" {
		title = fmt.Sprintf("Search results for: %q", q)
	}

	app.render(w, r, http.StatusOK, "index.tmpl", templateData{
		Title:       title,
		Page:        page,
		SearchQuery: q,
	})
}

// showPostHandler also serves GET /post/new: httprouter cannot register the
// static route next to the :slug wildcard, so "new" is dispatched here.
func (app *application) showPostHandler(w http.ResponseWriter, r *http.Request) {
	slug := app.readSlugParam(r)

	if slug == "new" {
		app.newPostFormHandler(w, r)
		return
	}

	post, err := app.postService.GetPostBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, postservice.ErrRecordNotFound):
			app.postNotFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.render(w, r, http.StatusOK, "post.tmpl", templateData{
		Title: post.Title,
		Post:  post,
	})
}

func (app *application) newPostFormHandler(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "new.tmpl", templateData{
		Title: "Create New Post",
	})
}

func (app *application) createPostHandler(w http.ResponseWriter, r *http.Request) {
	form, err := app.parsePostForm(r)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	req := &postservice.CreatePostRequest{
		Title:   form.Title,
		Content: form.Content,
	}

	err = app.postService.CreatePost(r.Context(), req)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.invalidInputResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.redirect(w, r, "/")
}

func (app *application) editPostFormHandler(w http.ResponseWriter, r *http.Request) {
	slug := app.readSlugParam(r)

	post, err := app.postService.GetPostBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, postservice.ErrRecordNotFound):
			app.postNotFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.render(w, r, http.StatusOK, "edit.tmpl", templateData{
		Title: "Edit Post",
		Post:  post,
	})
}

func (app *application) updatePostHandler(w http.ResponseWriter, r *http.Request) {
	slug := app.readSlugParam(r)

	form, err := app.parsePostForm(r)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	req := &postservice.UpdatePostRequest{
		Title:   form.Title,
		Content: form.Content,
	}

	newSlug, err := app.postService.UpdatePost(r.Context(), slug, req)
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.invalidInputResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.redirect(w, r, "/post/"+newSlug)
}

func (app *application) deletePostHandler(w http.ResponseWriter, r *http.Request) {
	slug := app.readSlugParam(r)

	err := app.postService.DeletePost(r.Context(), slug)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.redirect(w, r, "/")
}
