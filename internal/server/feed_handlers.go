package server

import (
	"pulse/internal/cache"
	"pulse/internal/models"
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFeed returns one page of the global feed, newest-first. Pages are cached
// briefly in Redis keyed by the full request URI; post writes invalidate all
// feed keys so readers only ever see the bounded staleness window.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	ctx := c.UserContext()
	q := service.FeedQuery{Page: parsePage(c)}

	var page models.PostPage
	err := cache.Aside(ctx, cache.FeedKey(c.OriginalURL()), &page, cache.FeedTTL, func() error {
		p, err := s.postService.ListFeed(ctx, q)
		if err != nil {
			return err
		}
		page = *p
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(page)
}

// GetFollowFeed returns one page of posts from authors the current user
// follows. Personalized, so never cached.
func (s *Server) GetFollowFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	page, err := s.postService.ListFeed(c.UserContext(), service.FeedQuery{
		FollowedByUserID: userID,
		Page:             parsePage(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// GetGroups lists all groups.
func (s *Server) GetGroups(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"groups": groups})
}

// GetGroupPosts returns one page of posts in the group identified by slug.
func (s *Server) GetGroupPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	slug := c.Params("slug")

	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return respondError(c, err)
	}

	page, err := s.postService.ListFeed(ctx, service.FeedQuery{
		GroupSlug: slug,
		Page:      parsePage(c),
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"group": group,
		"page":  page,
	})
}
