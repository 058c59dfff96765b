package server

import (
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the profile for username. When the request carries a
// valid token the payload includes the viewer's follow state.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	username := c.Params("username")
	currentUserID, _ := s.optionalUserID(c)

	profile, err := s.userService.GetProfile(c.UserContext(), username, currentUserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// GetUserPosts returns one page of posts authored by username.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	page, err := s.postService.ListFeed(c.UserContext(), service.FeedQuery{
		AuthorUsername: c.Params("username"),
		Page:           parsePage(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}
