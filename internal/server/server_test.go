package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse/internal/config"
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMocks bundles the mocked repositories behind a test Server.
type testMocks struct {
	user    *MockUserRepository
	group   *MockGroupRepository
	post    *MockPostRepository
	comment *MockCommentRepository
	follow  *MockFollowRepository
}

// newTestServer builds a Server on mocked repositories with real services.
func newTestServer() (*Server, *testMocks) {
	m := &testMocks{
		user:    new(MockUserRepository),
		group:   new(MockGroupRepository),
		post:    new(MockPostRepository),
		comment: new(MockCommentRepository),
		follow:  new(MockFollowRepository),
	}

	s := &Server{
		config:      &config.Config{JWTSecret: "test_secret", PageSize: 10},
		userRepo:    m.user,
		groupRepo:   m.group,
		postRepo:    m.post,
		commentRepo: m.comment,
		followRepo:  m.follow,
	}
	s.postService = service.NewPostService(m.post, m.group, m.user, m.comment, 10)
	s.commentService = service.NewCommentService(m.comment, m.post)
	s.followService = service.NewFollowService(m.follow, m.user)
	s.userService = service.NewUserService(m.user, m.post, m.follow)
	return s, m
}

// authedApp registers handler behind a middleware that sets the acting user.
func authedApp(userID uint) (*fiber.App, func(method, path string, handler fiber.Handler)) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	return app, func(method, path string, handler fiber.Handler) {
		app.Add(method, path, handler)
	}
}

func TestAuthRequired_MissingToken(t *testing.T) {
	s, _ := newTestServer()

	app := fiber.New()
	app.Get("/api/posts/new", s.AuthRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/posts/new?draft=1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	// The login flow target preserves the original URL in next
	assert.Equal(t, "/api/auth/login?next=/api/posts/new?draft=1", resp.Header.Get("Location"))
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	s, _ := newTestServer()

	app := fiber.New()
	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequired_ValidToken(t *testing.T) {
	s, _ := newTestServer()

	token, err := s.generateToken(7)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		assert.Equal(t, uint(7), c.Locals("userID"))
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
