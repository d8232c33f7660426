package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/issuetracker/internal/client"
	"github.com/thenoetrevino/issuetracker/internal/models"
	"github.com/thenoetrevino/issuetracker/internal/testutil"
	"github.com/thenoetrevino/issuetracker/internal/testutil/apitest"
)

func TestHealth(t *testing.T) {
	env := apitest.New(t)
	c := client.New(env.APIURL)

	health, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "Backend is running", health.Message)
}

func TestListIssues_EmptyIsNonNil(t *testing.T) {
	env := apitest.New(t)
	c := client.New(env.APIURL + "/")

	issues, err := c.ListIssues(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, issues)
	assert.Empty(t, issues)
}

func TestCreateThenList(t *testing.T) {
	env := apitest.New(t)
	c := client.New(env.APIURL)
	ctx := context.Background()

	testutil.CreateTestIssue(t, env.DB, "older", "Older", models.StatusClosed, time.Now().Add(-time.Hour))

	created, err := c.CreateIssue(ctx, client.CreateIssueRequest{
		Title:       "Bug A",
		Description: "desc",
		Status:      "in-progress",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, created.Status)

	issues, err := c.ListIssues(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, created.ID, issues[0].ID)
	assert.Equal(t, "older", issues[1].ID)
}

func TestCreateIssue_ValidationError(t *testing.T) {
	env := apitest.New(t)
	c := client.New(env.APIURL)

	_, err := c.CreateIssue(context.Background(), client.CreateIssueRequest{Title: "only title"})
	require.Error(t, err)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Title and description are required", apiErr.Message)
	assert.True(t, client.IsClientError(err))
}

func TestListIssues_ServerError(t *testing.T) {
	env := apitest.New(t)
	env.BreakStore(t)
	c := client.New(env.APIURL)

	_, err := c.ListIssues(context.Background())

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Failed to fetch issues", apiErr.Message)
	assert.False(t, client.IsClientError(err))
}

func TestNonJSONErrorBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(ts.Close)

	_, err := client.New(ts.URL).ListIssues(context.Background())

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "502 Bad Gateway", apiErr.Message)
}

func TestNoRetries(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(ts.Close)

	_, err := client.New(ts.URL).CreateIssue(context.Background(), client.CreateIssueRequest{Title: "t", Description: "d"})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestUnreachableServer(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := client.New(url, client.WithTimeout(time.Second)).Health(context.Background())
	require.Error(t, err)

	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr))
}
