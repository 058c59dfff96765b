package server

import (
	"pulse/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// FollowUser makes the current user follow the named author. Duplicate and
// self follows return 409.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	ctx := c.UserContext()
	follow, err := s.followService.Follow(ctx, userID, username)
	if err != nil {
		return respondError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "follow created", "author_id", follow.AuthorID)
	return c.Status(fiber.StatusCreated).JSON(follow)
}

// UnfollowUser removes the follow relation. Unfollowing an author who was
// never followed still returns 204.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	if err := s.followService.Unfollow(c.UserContext(), userID, username); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
