package service

import (
	"context"
	"log/slog"

	"agora/internal/middleware"
	"agora/internal/observability"
	"agora/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

type UpvoteService struct {
	upvoteRepo repository.UpvoteRepository
}

type ToggleUpvoteInput struct {
	CommentID string
	UserID    string
}

// UpvoteOutcome is the counter after a toggle and the message describing it.
type UpvoteOutcome struct {
	Result  *repository.ToggleResult
	Message string
}

func NewUpvoteService(upvoteRepo repository.UpvoteRepository) *UpvoteService {
	return &UpvoteService{upvoteRepo: upvoteRepo}
}

// ToggleUpvote adds the user's upvote to a comment, or removes it if already present.
func (s *UpvoteService) ToggleUpvote(ctx context.Context, in ToggleUpvoteInput) (out *UpvoteOutcome, err error) {
	commentID, err := parseRequiredID(in.CommentID, "Comment ID is required", "Invalid comment ID")
	if err != nil {
		return nil, err
	}
	userID, err := parseRequiredID(in.UserID, "User ID is required", "Invalid user ID")
	if err != nil {
		return nil, err
	}

	ctx, span := observability.StartSpan(ctx, "UpvoteService.ToggleUpvote",
		attribute.String("comment.id", commentID.String()),
	)
	defer func() { observability.EndSpan(span, err) }()

	res, err := s.upvoteRepo.Toggle(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}

	direction, message := "removed", "Upvote removed successfully"
	if res.Added {
		direction, message = "added", "Upvote added successfully"
	}
	observability.UpvoteTogglesTotal.WithLabelValues(direction).Inc()

	middleware.Logger.InfoContext(ctx, "Upvote toggled",
		slog.String("comment_id", commentID.String()),
		slog.String("user_id", userID.String()),
		slog.String("direction", direction),
		slog.Int("upvotes", res.Upvotes),
	)
	return &UpvoteOutcome{Result: res, Message: message}, nil
}
