// Package apitest starts a real Issue Store API over an in-memory database
// for tests of the server and of its clients.
package apitest

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/thenoetrevino/issuetracker/internal/app"
	"github.com/thenoetrevino/issuetracker/internal/server"
	"github.com/thenoetrevino/issuetracker/internal/testutil"
)

// Env is a running API backed by a private in-memory store
type Env struct {
	*httptest.Server

	DB     *sql.DB
	App    *app.App
	API    *server.Server
	APIURL string
}

// New starts an API server; it is closed when the test ends.
// Logs are discarded unless an app.WithLogger option overrides it.
func New(t *testing.T, opts ...app.Option) *Env {
	t.Helper()

	db := testutil.SetupTestDB(t)

	base := []app.Option{
		app.WithDB(db),
		app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	a, err := app.New(context.Background(), nil, append(base, opts...)...)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}

	api := server.New(a)
	ts := httptest.NewServer(api.Handler())
	t.Cleanup(ts.Close)

	return &Env{
		Server: ts,
		DB:     db,
		App:    a,
		API:    api,
		APIURL: ts.URL + "/api",
	}
}

// BreakStore closes the database so that every store call fails
func (e *Env) BreakStore(t *testing.T) {
	t.Helper()
	if err := e.DB.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}
}
