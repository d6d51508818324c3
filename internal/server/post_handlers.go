package server

import (
	"agora/internal/middleware"
	"agora/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type createPostRequest struct {
	Title    string  `json:"title"`
	AuthorID string  `json:"author_id"`
	Body     string  `json:"body"`
	ImageURL *string `json:"image_url"`
}

type userPostsRequest struct {
	AuthorID string `json:"author_id"`
}

type deletePostRequest struct {
	PostID string `json:"post_id"`
	UserID string `json:"user_id"`
}

type deletePostResponse struct {
	Message string    `json:"message"`
	PostID  uuid.UUID `json:"post_id"`
}

// CreatePost handles POST /create-post
// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body createPostRequest true "Post fields"
// @Success 201 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Router /create-post [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	ctx := middleware.WithActorID(c.UserContext(), req.AuthorID)

	post, err := s.postSvc().CreatePost(ctx, service.CreatePostInput{
		Title:    req.Title,
		AuthorID: req.AuthorID,
		Body:     req.Body,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetRecentPosts handles GET /get-recent-post
// @Summary List recent posts
// @Description Newest live posts with their author
// @Tags posts
// @Produce json
// @Success 200 {array} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Router /get-recent-post [get]
func (s *Server) GetRecentPosts(c *fiber.Ctx) error {
	posts, err := s.postSvc().ListRecent(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetUserPosts handles POST /get-user-post
// @Summary List posts by author
// @Description Every post by the author, deleted ones included, newest first
// @Tags posts
// @Accept json
// @Produce json
// @Param request body userPostsRequest true "Author"
// @Success 200 {array} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Router /get-user-post [post]
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	var req userPostsRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	posts, err := s.postSvc().ListByAuthor(c.UserContext(), req.AuthorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// DeletePost handles POST /delete-post
// @Summary Delete post
// @Description Soft-deletes a post. Only the author or an admin may delete.
// @Tags posts
// @Accept json
// @Produce json
// @Param request body deletePostRequest true "Post and acting user"
// @Success 200 {object} deletePostResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /delete-post [post]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	var req deletePostRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	ctx := middleware.WithActorID(c.UserContext(), req.UserID)

	postID, err := s.postSvc().DeletePost(ctx, service.DeletePostInput{
		PostID: req.PostID,
		UserID: req.UserID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(deletePostResponse{Message: "Post deleted successfully", PostID: postID})
}
