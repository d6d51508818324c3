package service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"agora/internal/featureflags"
	"agora/internal/middleware"
	"agora/internal/models"
	"agora/internal/observability"
	"agora/internal/repository"

	"github.com/google/uuid"
)

const maxTitleLen = 200

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	flags    *featureflags.Manager
}

type CreatePostInput struct {
	Title    string
	AuthorID string
	Body     string
	ImageURL *string
}

type DeletePostInput struct {
	PostID string
	UserID string
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	flags *featureflags.Manager,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		flags:    flags,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return nil, models.NewValidationError("Title must be at most 200 characters")
	}

	if strings.TrimSpace(in.Body) == "" {
		return nil, models.NewValidationError("Body is required")
	}

	authorID, err := parseRequiredID(in.AuthorID, "Author ID is required and cannot be empty", "Invalid author ID")
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:    title,
		Body:     in.Body,
		ImageURL: in.ImageURL,
		AuthorID: authorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "Post created",
		slog.String("post_id", post.ID.String()),
		slog.String("author_id", authorID.String()),
	)
	return post, nil
}

// ListRecent returns the newest live posts.
func (s *PostService) ListRecent(ctx context.Context) ([]models.Post, error) {
	posts, err := s.postRepo.ListRecent(ctx, repository.RecentPostsLimit)
	if err != nil {
		return nil, err
	}
	return s.nonEmpty(posts, "")
}

// ListByAuthor returns every post by the author, deleted ones included.
func (s *PostService) ListByAuthor(ctx context.Context, rawAuthorID string) ([]models.Post, error) {
	authorID, err := parseRequiredID(rawAuthorID, "Author ID is required and cannot be empty", "Invalid author ID")
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return s.nonEmpty(posts, authorID.String())
}

func (s *PostService) nonEmpty(posts []models.Post, subject string) ([]models.Post, error) {
	if len(posts) > 0 {
		return posts, nil
	}
	if s.flags.Enabled(featureflags.EmptyListOK, subject) {
		return []models.Post{}, nil
	}
	return nil, emptyListError("No posts found for this user")
}

// DeletePost soft-deletes a post on behalf of its author or an admin.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) (uuid.UUID, error) {
	postID, err := parseRequiredID(in.PostID, "Post ID is required", "Invalid post ID")
	if err != nil {
		return uuid.Nil, err
	}
	userID, err := parseRequiredID(in.UserID, "User ID is required", "Invalid user ID")
	if err != nil {
		return uuid.Nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return uuid.Nil, err
	}
	if post.IsDeleted {
		return uuid.Nil, models.NewValidationError("Post is already deleted")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}

	isAuthor := post.AuthorID == userID
	if !isAuthor && !user.IsAdmin() {
		return uuid.Nil, models.NewForbiddenError("You do not have permission to delete this post")
	}

	flipped, err := s.postRepo.SoftDelete(ctx, postID)
	if err != nil {
		return uuid.Nil, err
	}
	if !flipped {
		return uuid.Nil, models.NewValidationError("Post is already deleted")
	}
	observability.SoftDeletesTotal.WithLabelValues("post").Inc()

	middleware.Logger.InfoContext(ctx, "Post deleted",
		slog.String("post_id", postID.String()),
		slog.String("user_id", userID.String()),
		slog.Bool("is_admin", user.IsAdmin()),
	)
	return postID, nil
}
