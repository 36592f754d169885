package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func seedPost(t *testing.T, db *sql.DB, title, slug, content string, createdAt time.Time) {
	t.Helper()

	query := `
		INSERT INTO posts (title, slug, content, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := db.Exec(query, title, slug, content, createdAt)
	assert.NoError(t, err)
}

func seedPosts(t *testing.T, db *sql.DB, n int) {
	t.Helper()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		seedPost(t, db, fmt.Sprintf("Post %d", i), fmt.Sprintf("post-%d", i), "content", base.Add(time.Duration(i)*time.Minute))
	}
}

func TestListPostsHandler(t *testing.T) {
	app, db := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	seedPosts(t, db, 7)

	t.Run("first page by default", func(t *testing.T) {
		status, _, body := ts.get(t, "/")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Blog Posts")
		assert.Contains(t, body, "Post 1")
		assert.Contains(t, body, "Post 5")
		assert.NotContains(t, body, "Post 6")
		assert.Contains(t, body, "Page 1 of 2")
	})

	t.Run("second page", func(t *testing.T) {
		status, _, body := ts.get(t, "/?page=2")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Post 6")
		assert.Contains(t, body, "Post 7")
		assert.NotContains(t, body, ">Post 5<")
		assert.Contains(t, body, "Page 2 of 2")
	})

	t.Run("garbage page parameter defaults to one", func(t *testing.T) {
		status, _, body := ts.get(t, "/?page=abc")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Post 1")
		assert.Contains(t, body, "Page 1 of 2")
	})

	t.Run("page beyond the last renders empty with correct total", func(t *testing.T) {
		status, _, body := ts.get(t, "/?page=99")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "No posts found.")
		assert.Contains(t, body, "Page 99 of 2")
	})
}

func TestSearchPostsHandler(t *testing.T) {
	app, db := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	seedPost(t, db, "Go for Beginners", "go-for-beginners", "content", base)
	seedPost(t, db, "Advanced Go", "advanced-go", "content", base.Add(time.Minute))
	seedPost(t, db, "Cooking at Home", "cooking-at-home", "content", base.Add(2*time.Minute))

	t.Run("matching query", func(t *testing.T) {
		status, _, body := ts.get(t, "/search?q=Go")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Search results for: &#34;Go&#34;")
		assert.Contains(t, body, "Go for Beginners")
		assert.Contains(t, body, "Advanced Go")
		assert.NotContains(t, body, "Cooking at Home")
	})

	t.Run("empty query lists everything", func(t *testing.T) {
		status, _, body := ts.get(t, "/search")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "All Posts")
		assert.Contains(t, body, "Go for Beginners")
		assert.Contains(t, body, "Cooking at Home")
	})

	t.Run("whitespace query lists everything", func(t *testing.T) {
		status, _, body := ts.get(t, "/search?q=%20%20")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "All Posts")
		assert.Contains(t, body, "Cooking at Home")
	})

	t.Run("no results", func(t *testing.T) {
		status, _, body := ts.get(t, "/search?q=Rust")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "No posts found.")
	})
}

func TestShowPostHandler(t *testing.T) {
	app, db := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	seedPost(t, db, "A Post", "a-post", "<em>verbatim</em> content", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	t.Run("existing post", func(t *testing.T) {
		status, _, body := ts.get(t, "/post/a-post")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "A Post")
		// content is rendered exactly as stored
		assert.Contains(t, body, "<em>verbatim</em> content")
	})

	t.Run("missing post", func(t *testing.T) {
		status, _, body := ts.get(t, "/post/missing")

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, envelope{"error": "Post not found"}, readEnvelope(t, body))
	})
}

func TestNewPostFormHandler(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	status, _, body := ts.get(t, "/post/new")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Create New Post")
	assert.Contains(t, body, `action="/post"`)
}

func TestEditPostFormHandler(t *testing.T) {
	app, db := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	seedPost(t, db, "A Post", "a-post", "some content", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	t.Run("existing post", func(t *testing.T) {
		status, _, body := ts.get(t, "/post/a-post/edit")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Edit Post")
		assert.Contains(t, body, `value="A Post"`)
		assert.Contains(t, body, "some content")
	})

	t.Run("missing post", func(t *testing.T) {
		status, _, body := ts.get(t, "/post/missing/edit")

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, envelope{"error": "Post not found"}, readEnvelope(t, body))
	})
}

func TestCreatePostHandler(t *testing.T) {
	app, db := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	cleanup := func(t *testing.T) {
		_, err := db.Exec("DELETE FROM posts")
		assert.NoError(t, err)
	}

	t.Run("valid input redirects to the listing", func(t *testing.T) {
		defer cleanup(t)

		status, header, _ := ts.postForm(t, "/post", url.Values{
			"title":   {"New Post Title"},
			"content": {"This is the content of the new post"},
		})

		assert.Equal(t, http.StatusSeeOther, status)
		assert.Equal(t, "/", header.Get("Location"))

		var title, slug string
		err := db.QueryRow("SELECT title, slug FROM posts").Scan(&title, &slug)
		assert.NoError(t, err)
		assert.Equal(t, "New Post Title", title)
		assert.Equal(t, "new-post-title", slug)
	})

	t.Run("title of exactly 100 characters is accepted", func(t *testing.T) {
		defer cleanup(t)

		status, header, _ := ts.postForm(t, "/post", url.Values{
			"title":   {strings.Repeat("a", 100)},
			"content": {"content"},
		})

		assert.Equal(t, http.StatusSeeOther, status)
		assert.Equal(t, "/", header.Get("Location"))
	})

	invalidCases := []struct {
		name string
		form url.Values
	}{
		{
			name: "missing title",
			form: url.Values{"content": {"content"}},
		},
		{
			name: "empty title",
			form: url.Values{"title": {""}, "content": {"content"}},
		},
		{
			name: "digits only title",
			form: url.Values{"title": {"123456"}, "content": {"content"}},
		},
		{
			name: "title of 101 characters",
			form: url.Values{"title": {strings.Repeat("a", 101)}, "content": {"content"}},
		},
		{
			name: "missing content",
			form: url.Values{"title": {"A Title"}},
		},
		{
			name: "empty content",
			form: url.Values{"title": {"A Title"}, "content": {""}},
		},
	}

	for _, tc := range invalidCases {
		t.Run(tc.name, func(t *testing.T) {
			defer cleanup(t)

			status, _, body := ts.postForm(t, "/post", tc.form)

			assert.Equal(t, http.StatusBadRequest, status)

			env := readEnvelope(t, body)
			assert.Equal(t, "Invalid input", env["error"])
			assert.NotEmpty(t, env["details"])

			var count int
			err := db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count)
			assert.NoError(t, err)
			assert.Equal(t, 0, count)
		})
	}
}

func TestUpdatePostHandler(t *testing.T) {
	app, db := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	setup := func(t *testing.T) {
		_, err := db.Exec("DELETE FROM posts")
		assert.NoError(t, err)
		seedPost(t, db, "Old Title", "old-slug", "old content", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	}

	t.Run("new title redirects to the new slug", func(t *testing.T) {
		setup(t)

		status, header, _ := ts.postForm(t, "/post/old-slug/edit", url.Values{
			"title":   {"Updated Post Title"},
			"content": {"new content"},
		})

		assert.Equal(t, http.StatusSeeOther, status)
		assert.Equal(t, "/post/updated-post-title", header.Get("Location"))

		var title, slug, content string
		err := db.QueryRow("SELECT title, slug, content FROM posts").Scan(&title, &slug, &content)
		assert.NoError(t, err)
		assert.Equal(t, "Updated Post Title", title)
		assert.Equal(t, "updated-post-title", slug)
		assert.Equal(t, "new content", content)
	})

	t.Run("unchanged title redirects to the same slug", func(t *testing.T) {
		setup(t)

		status, header, _ := ts.postForm(t, "/post/old-slug/edit", url.Values{
			"title":   {"Old Title"},
			"content": {"only the content changed"},
		})

		assert.Equal(t, http.StatusSeeOther, status)
		assert.Equal(t, "/post/old-slug", header.Get("Location"))

		var slug, content string
		err := db.QueryRow("SELECT slug, content FROM posts").Scan(&slug, &content)
		assert.NoError(t, err)
		assert.Equal(t, "old-slug", slug)
		assert.Equal(t, "only the content changed", content)
	})

	t.Run("validation failure leaves the post untouched", func(t *testing.T) {
		setup(t)

		status, _, body := ts.postForm(t, "/post/old-slug/edit", url.Values{
			"title":   {"123456"},
			"content": {"new content"},
		})

		assert.Equal(t, http.StatusBadRequest, status)

		env := readEnvelope(t, body)
		assert.Equal(t, "Invalid input", env["error"])
		assert.NotEmpty(t, env["details"])

		var title, content string
		err := db.QueryRow("SELECT title, content FROM posts").Scan(&title, &content)
		assert.NoError(t, err)
		assert.Equal(t, "Old Title", title)
		assert.Equal(t, "old content", content)
	})
}

func TestDeletePostHandler(t *testing.T) {
	app, db := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	seedPost(t, db, "Post To Delete", "post-to-delete", "content", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	status, header, _ := ts.postForm(t, "/post/post-to-delete/delete", nil)

	assert.Equal(t, http.StatusSeeOther, status)
	assert.Equal(t, "/", header.Get("Location"))

	status, _, body := ts.get(t, "/post/post-to-delete")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, envelope{"error": "Post not found"}, readEnvelope(t, body))
}

func TestHealthCheckHandler(t *testing.T) {
	app := &application{
		config: &Config{Environment: "test", Version: "1.0.0"},
	}
	ts := newTestServer(t, http.HandlerFunc(app.healthCheckHandler))

	status, _, body := ts.get(t, "/")

	assert.Equal(t, http.StatusOK, status)

	env := readEnvelope(t, body)
	assert.Equal(t, "available", env["status"])
}
