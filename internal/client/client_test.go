package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotebook-backend/internal/domains/sentence/handler"
	"quotebook-backend/internal/domains/sentence/repository"
	"quotebook-backend/internal/domains/sentence/service"
)

func strPtr(s string) *string { return &s }

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	svc := service.NewSentenceService(repository.NewMemoryRepository())
	handler.NewSentenceHandler(svc).RegisterRoutes(r.Group("/api"))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_RoundTrip(t *testing.T) {
	c := New(newAPI(t).URL + "/")
	ctx := context.Background()

	list, err := c.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	created, err := c.Create(ctx, "Stay hungry", "保持饥饿")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	updated, err := c.Update(ctx, created.ID.String(), nil, strPtr("饥饿感"))
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Stay hungry", updated.English)
	assert.Equal(t, "饥饿感", updated.Chinese)

	require.NoError(t, c.Delete(ctx, created.ID.String()))

	gone, err := c.Update(ctx, created.ID.String(), strPtr("x"), nil)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestClient_ServerErrorMessage(t *testing.T) {
	c := New(newAPI(t).URL)

	_, err := c.Create(context.Background(), "", "保持饥饿")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Failed to create sentence", apiErr.Message)
}

func TestClient_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := New(srv.URL).List(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
}

func TestClient_EscapesID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"message":"Sentence deleted successfully"}`))
	}))
	t.Cleanup(srv.Close)

	require.NoError(t, New(srv.URL).Delete(context.Background(), "a/b"))
	assert.Equal(t, "/api/sentences/a%2Fb", gotPath)
}
