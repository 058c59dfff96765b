package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetFeed(t *testing.T) {
	s, m := newTestServer()
	app := fiber.New()
	app.Get("/api/feed", s.GetFeed)

	posts := []*models.Post{{ID: 2, Text: "second"}, {ID: 1, Text: "first"}}
	m.post.On("List", mock.Anything, 10, 0).Return(posts, int64(2), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page models.PostPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, "second", page.Posts[0].Text)
}

func TestGetFeed_PageClamping(t *testing.T) {
	s, m := newTestServer()
	app := fiber.New()
	app.Get("/api/feed", s.GetFeed)

	// 12 posts total: page 99 clamps to page 2
	m.post.On("List", mock.Anything, 10, 980).Return(nil, int64(12), nil)
	m.post.On("List", mock.Anything, 10, 10).
		Return([]*models.Post{{ID: 1}, {ID: 2}}, int64(12), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/feed?page=99", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page models.PostPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Posts, 2)
}

func TestGetFollowFeed(t *testing.T) {
	s, m := newTestServer()
	app, add := authedApp(3)
	add(http.MethodGet, "/api/feed/following", s.GetFollowFeed)

	m.post.On("ListByFollowed", mock.Anything, uint(3), 10, 0).
		Return([]*models.Post{{ID: 1, Text: "from followed"}}, int64(1), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/feed/following", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page models.PostPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "from followed", page.Posts[0].Text)
}

func TestGetGroupPosts(t *testing.T) {
	s, m := newTestServer()
	app := fiber.New()
	app.Get("/api/groups/:slug/posts", s.GetGroupPosts)

	t.Run("Success", func(t *testing.T) {
		group := &models.Group{ID: 5, Title: "Go Talk", Slug: "go-talk"}
		m.group.On("GetBySlug", mock.Anything, "go-talk").Return(group, nil)
		m.post.On("ListByGroup", mock.Anything, uint(5), 10, 0).
			Return([]*models.Post{{ID: 1}}, int64(1), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/groups/go-talk/posts", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Unknown Slug", func(t *testing.T) {
		m.group.On("GetBySlug", mock.Anything, "nope").
			Return(nil, models.NewNotFoundError("Group", "nope"))

		req := httptest.NewRequest(http.MethodGet, "/api/groups/nope/posts", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
