package server

import (
	"agora/internal/middleware"
	"agora/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type createCommentRequest struct {
	PostID          string  `json:"post_id"`
	ParentCommentID *string `json:"parent_comment_id"`
	UserID          string  `json:"user_id"`
	Text            string  `json:"text"`
	// Ignored. New comments start at zero.
	Upvotes *int `json:"upvotes"`
}

type postCommentsRequest struct {
	PostID string `json:"post_id"`
	SortBy string `json:"sort_by"`
}

type commentRepliesRequest struct {
	PostID          string `json:"post_id"`
	ParentCommentID string `json:"parent_comment_id"`
	SortBy          string `json:"sort_by"`
}

type deleteCommentRequest struct {
	CommentID string `json:"comment_id"`
	UserID    string `json:"user_id"`
}

type deleteCommentResponse struct {
	Message   string    `json:"message"`
	CommentID uuid.UUID `json:"comment_id"`
}

// CreateComment handles POST /create-comment
// @Summary Create comment
// @Description Adds a top-level comment or, with parent_comment_id, a reply
// @Tags comments
// @Accept json
// @Produce json
// @Param request body createCommentRequest true "Comment fields"
// @Success 200 {object} models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Router /create-comment [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	ctx := middleware.WithActorID(c.UserContext(), req.UserID)

	comment, err := s.commentSvc().CreateComment(ctx, service.CreateCommentInput{
		PostID:          req.PostID,
		ParentCommentID: req.ParentCommentID,
		UserID:          req.UserID,
		Text:            req.Text,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(comment)
}

// GetPostComments handles POST /get-post-comments
// @Summary List comments on a post
// @Description sort_by is one of upvotes, created_at (default) or oldest
// @Tags comments
// @Accept json
// @Produce json
// @Param request body postCommentsRequest true "Post and sort"
// @Success 200 {array} models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Router /get-post-comments [post]
func (s *Server) GetPostComments(c *fiber.Ctx) error {
	var req postCommentsRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	comments, err := s.commentSvc().ListComments(c.UserContext(), service.ListCommentsInput{
		PostID: req.PostID,
		SortBy: req.SortBy,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

// GetCommentReplies handles POST /get-comment-reply
// @Summary List replies to a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param request body commentRepliesRequest true "Post, parent comment and sort"
// @Success 200 {array} models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Router /get-comment-reply [post]
func (s *Server) GetCommentReplies(c *fiber.Ctx) error {
	var req commentRepliesRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	replies, err := s.commentSvc().ListReplies(c.UserContext(), service.ListRepliesInput{
		PostID:          req.PostID,
		ParentCommentID: req.ParentCommentID,
		SortBy:          req.SortBy,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(replies)
}

// DeleteComment handles POST /delete-comment
// @Summary Delete comment
// @Description Soft-deletes a comment. Only the owner or an admin may delete.
// @Tags comments
// @Accept json
// @Produce json
// @Param request body deleteCommentRequest true "Comment and acting user"
// @Success 200 {object} deleteCommentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /delete-comment [post]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	var req deleteCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	ctx := middleware.WithActorID(c.UserContext(), req.UserID)

	commentID, err := s.commentSvc().DeleteComment(ctx, service.DeleteCommentInput{
		CommentID: req.CommentID,
		UserID:    req.UserID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(deleteCommentResponse{Message: "Comment deleted successfully", CommentID: commentID})
}
