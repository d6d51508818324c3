package service

import (
	"context"
	"log/slog"
	"strings"

	"agora/internal/featureflags"
	"agora/internal/middleware"
	"agora/internal/models"
	"agora/internal/observability"
	"agora/internal/repository"

	"github.com/google/uuid"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	flags       *featureflags.Manager
}

type CreateCommentInput struct {
	PostID          string
	ParentCommentID *string
	UserID          string
	Text            string
}

type ListCommentsInput struct {
	PostID string
	SortBy string
}

type ListRepliesInput struct {
	PostID          string
	ParentCommentID string
	SortBy          string
}

type DeleteCommentInput struct {
	CommentID string
	UserID    string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	flags *featureflags.Manager,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		flags:       flags,
	}
}

// CreateComment adds a top-level comment, or a reply when ParentCommentID is set.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	postID, err := parseRequiredID(in.PostID, "Post ID is required", "Invalid post ID")
	if err != nil {
		return nil, err
	}
	userID, err := parseRequiredID(in.UserID, "User ID is required", "Invalid user ID")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Comment text cannot be empty")
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   in.Text,
	}

	if in.ParentCommentID != nil && strings.TrimSpace(*in.ParentCommentID) != "" {
		parentID, err := uuid.Parse(strings.TrimSpace(*in.ParentCommentID))
		if err != nil {
			return nil, models.NewValidationError("Invalid parent comment ID")
		}
		if s.flags.Enabled(featureflags.ReplyParentCheck, userID.String()) {
			if err := s.checkParent(ctx, postID, parentID); err != nil {
				return nil, err
			}
		}
		comment.ParentCommentID = &parentID
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "Comment created",
		slog.String("comment_id", comment.ID.String()),
		slog.String("post_id", postID.String()),
	)
	return comment, nil
}

func (s *CommentService) checkParent(ctx context.Context, postID, parentID uuid.UUID) error {
	parent, err := s.commentRepo.GetByID(ctx, parentID)
	if err != nil {
		if models.IsCode(err, models.CodeNotFound) {
			return models.NewNotFoundError("Parent comment")
		}
		return err
	}
	if parent.PostID != postID {
		return models.NewNotFoundError("Parent comment")
	}
	return nil
}

// ListComments returns every comment on a post, replies and deleted comments included.
func (s *CommentService) ListComments(ctx context.Context, in ListCommentsInput) ([]models.Comment, error) {
	postID, err := parseRequiredID(in.PostID, "Post ID is required", "Invalid post ID")
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID, models.ParseCommentSort(in.SortBy))
	if err != nil {
		return nil, err
	}
	return s.nonEmpty(comments, postID.String())
}

// ListReplies returns the direct replies to a comment.
func (s *CommentService) ListReplies(ctx context.Context, in ListRepliesInput) ([]models.Comment, error) {
	postID, err := parseRequiredID(in.PostID, "Post ID is required", "Invalid post ID")
	if err != nil {
		return nil, err
	}
	parentID, err := parseRequiredID(in.ParentCommentID, "Parent Comment ID is required", "Invalid parent comment ID")
	if err != nil {
		return nil, err
	}

	replies, err := s.commentRepo.ListReplies(ctx, postID, parentID, models.ParseCommentSort(in.SortBy))
	if err != nil {
		return nil, err
	}
	return s.nonEmpty(replies, postID.String())
}

func (s *CommentService) nonEmpty(comments []models.Comment, subject string) ([]models.Comment, error) {
	if len(comments) > 0 {
		return comments, nil
	}
	if s.flags.Enabled(featureflags.EmptyListOK, subject) {
		return []models.Comment{}, nil
	}
	return nil, emptyListError("No comments found for this post")
}

// DeleteComment soft-deletes a comment on behalf of its author or an admin. Upvotes are kept.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) (uuid.UUID, error) {
	commentID, err := parseRequiredID(in.CommentID, "Comment ID is required", "Invalid comment ID")
	if err != nil {
		return uuid.Nil, err
	}
	userID, err := parseRequiredID(in.UserID, "User ID is required", "Invalid user ID")
	if err != nil {
		return uuid.Nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return uuid.Nil, err
	}
	if comment.IsDeleted {
		return uuid.Nil, models.NewValidationError("Comment is already deleted")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}

	if comment.UserID != userID && !user.IsAdmin() {
		return uuid.Nil, models.NewForbiddenError("You do not have permission to delete this comment")
	}

	flipped, err := s.commentRepo.SoftDelete(ctx, commentID)
	if err != nil {
		return uuid.Nil, err
	}
	if !flipped {
		return uuid.Nil, models.NewValidationError("Comment is already deleted")
	}
	observability.SoftDeletesTotal.WithLabelValues("comment").Inc()

	middleware.Logger.InfoContext(ctx, "Comment deleted",
		slog.String("comment_id", commentID.String()),
		slog.String("user_id", userID.String()),
	)
	return commentID, nil
}
