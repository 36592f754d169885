package main

import (
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caiofernandes/blogo/internal/common"
	"github.com/caiofernandes/blogo/internal/postservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	// redirects are asserted on, not followed
	ts.Client().CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func newTestApplication(t *testing.T) (*application, *sql.DB) {
	db := common.TestDB("file://../migrations", t)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	templateCache, err := newTemplateCache()
	assert.NoError(t, err)

	cfg := &Config{
		Port:        ":4000",
		Environment: "test",
		Version:     "1.0.0",
	}

	app := &application{
		config:        cfg,
		logger:        logger,
		postService:   postservice.NewPostService(db),
		templateCache: templateCache,
	}

	return app, db
}

func readBody(t *testing.T, res *http.Response) string {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	return string(body)
}

func readEnvelope(t *testing.T, body string) envelope {
	var env envelope
	err := json.Unmarshal([]byte(body), &env)
	if err != nil {
		t.Fatal(err)
	}

	return env
}

func (ts *testServer) get(t *testing.T, path string) (int, http.Header, string) {
	res, err := ts.Client().Get(ts.URL + path)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, readBody(t, res)
}

func (ts *testServer) postForm(t *testing.T, path string, form url.Values) (int, http.Header, string) {
	res, err := ts.Client().Post(ts.URL+path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, readBody(t, res)
}
