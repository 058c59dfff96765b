package server

import (
	"pulse/internal/middleware"
	"pulse/internal/models"
	"pulse/internal/service"

	"github.com/gofiber/fiber/v2"
)

type postRequest struct {
	Text     string `json:"text"`
	GroupID  *uint  `json:"group_id"`
	ImageURL string `json:"image_url"`
}

// GetPost returns the detail view of a single post with its comments.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	detail, err := s.postService.GetPostDetail(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(detail)
}

// CreatePost creates a post authored by the current user.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx := c.UserContext()
	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		AuthorID: userID,
		Text:     req.Text,
		GroupID:  req.GroupID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "post created", "post_id", post.ID)
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost edits an existing post. Only the author may edit; everyone else
// gets 403.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ctx := c.UserContext()
	post, err := s.postService.UpdatePost(ctx, service.UpdatePostInput{
		AuthorID: userID,
		PostID:   id,
		Text:     req.Text,
		GroupID:  req.GroupID,
	})
	if err != nil {
		return respondError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "post updated", "post_id", post.ID)
	return c.JSON(post)
}

// DeletePost removes a post. Only the author may delete; everyone else gets 403.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ctx := c.UserContext()
	if err := s.postService.DeletePost(ctx, userID, id); err != nil {
		return respondError(c, err)
	}

	middleware.Logger.InfoContext(ctx, "post deleted", "post_id", id)
	return c.SendStatus(fiber.StatusNoContent)
}
