package server

import (
	"devconnect/internal/middleware"
	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), middleware.CurrentUserID(c), req.Text)
	if err != nil {
		return s.respondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.Context())
	if err != nil {
		return s.respondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "No post found")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), postID)
	if err != nil {
		return s.respondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "No post found")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), middleware.CurrentUserID(c), postID); err != nil {
		return s.respondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "Post removed"})
}

// LikePost handles PUT /api/posts/like/:id
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "No post found")
	if err != nil {
		return nil
	}

	likes, err := s.postService.Like(c.Context(), middleware.CurrentUserID(c), postID)
	if err != nil {
		return s.respondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(likes)
}

// UnlikePost handles PUT /api/posts/unlike/:id
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "No post found")
	if err != nil {
		return nil
	}

	likes, err := s.postService.Unlike(c.Context(), middleware.CurrentUserID(c), postID)
	if err != nil {
		return s.respondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(likes)
}

// AddComment handles POST /api/posts/comment/:id
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "No post found")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comments, err := s.postService.Comment(c.Context(), middleware.CurrentUserID(c), postID, req.Text)
	if err != nil {
		return s.respondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(comments)
}

// DeleteComment handles DELETE /api/posts/comment/:id/:comment_id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "No post found")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "comment_id", "Comment not found")
	if err != nil {
		return nil
	}

	comments, err := s.postService.RemoveComment(c.Context(), middleware.CurrentUserID(c), postID, commentID)
	if err != nil {
		return s.respondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(comments)
}
