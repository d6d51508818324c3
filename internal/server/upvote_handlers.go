package server

import (
	"agora/internal/middleware"
	"agora/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type upvoteRequest struct {
	CommentID string `json:"comment_id"`
	UserID    string `json:"user_id"`
}

type upvoteResponse struct {
	CommentID uuid.UUID `json:"comment_id"`
	Upvotes   int       `json:"upvotes"`
	Message   string    `json:"message"`
}

// UpvoteComment handles POST /upvote-comment
// @Summary Toggle upvote
// @Description Adds the user's upvote to the comment, or removes it when already present
// @Tags comments
// @Accept json
// @Produce json
// @Param request body upvoteRequest true "Comment and voter"
// @Success 200 {object} upvoteResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /upvote-comment [post]
func (s *Server) UpvoteComment(c *fiber.Ctx) error {
	var req upvoteRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	ctx := middleware.WithActorID(c.UserContext(), req.UserID)

	out, err := s.upvoteSvc().ToggleUpvote(ctx, service.ToggleUpvoteInput{
		CommentID: req.CommentID,
		UserID:    req.UserID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(upvoteResponse{
		CommentID: out.Result.CommentID,
		Upvotes:   out.Result.Upvotes,
		Message:   out.Message,
	})
}
