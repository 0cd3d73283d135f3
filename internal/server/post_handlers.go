package server

import (
	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

type createPostRequest struct {
	Text string `json:"text"`
}

type createCommentRequest struct {
	Text string `json:"text"`
}

// CreatePost handles POST /api/posts.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), currentUserID(c), req.Text)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:postId.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId", "Post")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:postId.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId", "Post")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), currentUserID(c), postID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "Post removed"})
}

// LikePost handles PUT /api/posts/like/:postId and returns the post's
// updated likes.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId", "Post")
	if err != nil {
		return nil
	}

	post, err := s.postService.LikePost(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post.Likes)
}

// UnlikePost handles PUT /api/posts/unlike/:postId.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId", "Post")
	if err != nil {
		return nil
	}

	post, err := s.postService.UnlikePost(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post.Likes)
}

// AddComment handles POST /api/posts/comment/:postId and returns the post's
// updated comments.
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId", "Post")
	if err != nil {
		return nil
	}

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.AddComment(c.UserContext(), currentUserID(c), postID, req.Text)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post.Comments)
}

// DeleteComment handles DELETE /api/posts/comment/:postId/:commentId.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId", "Post")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId", "Comment")
	if err != nil {
		return nil
	}

	post, err := s.postService.DeleteComment(c.UserContext(), currentUserID(c), postID, commentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post.Comments)
}
