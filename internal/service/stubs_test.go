package service

import (
	"context"
	"testing"

	"agora/internal/models"
	"agora/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn      func(context.Context, uuid.UUID) (*models.User, error)
	getByClerkIDFn func(context.Context, string) (*models.User, error)
	getByEmailFn   func(context.Context, string) (*models.User, error)
	createFn       func(context.Context, *models.User) error
	updateFn       func(context.Context, *models.User) error
	softDeleteFn   func(context.Context, uuid.UUID) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	return s.getByClerkIDFn(ctx, clerkID)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return s.softDeleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleUser}, nil
		},
		getByClerkIDFn: func(_ context.Context, _ string) (*models.User, error) {
			return nil, models.NewNotFoundError("User")
		},
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn: func(_ context.Context, u *models.User) error {
			u.ID = uuid.New()
			return nil
		},
		updateFn:     func(_ context.Context, _ *models.User) error { return nil },
		softDeleteFn: func(_ context.Context, _ uuid.UUID) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn       func(context.Context, *models.Post) error
	getByIDFn      func(context.Context, uuid.UUID) (*models.Post, error)
	listRecentFn   func(context.Context, int) ([]models.Post, error)
	listByAuthorFn func(context.Context, uuid.UUID) ([]models.Post, error)
	softDeleteFn   func(context.Context, uuid.UUID) (bool, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListRecent(ctx context.Context, limit int) ([]models.Post, error) {
	return s.listRecentFn(ctx, limit)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Post, error) {
	return s.listByAuthorFn(ctx, authorID)
}
func (s *postRepoStub) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.softDeleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, p *models.Post) error {
			p.ID = uuid.New()
			return nil
		},
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		listRecentFn:   func(_ context.Context, _ int) ([]models.Post, error) { return nil, nil },
		listByAuthorFn: func(_ context.Context, _ uuid.UUID) ([]models.Post, error) { return nil, nil },
		softDeleteFn:   func(_ context.Context, _ uuid.UUID) (bool, error) { return true, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uuid.UUID) (*models.Comment, error)
	listByPostFn  func(context.Context, uuid.UUID, models.CommentSort) ([]models.Comment, error)
	listRepliesFn func(context.Context, uuid.UUID, uuid.UUID, models.CommentSort) ([]models.Comment, error)
	softDeleteFn  func(context.Context, uuid.UUID) (bool, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uuid.UUID, sort models.CommentSort) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID, sort)
}
func (s *commentRepoStub) ListReplies(ctx context.Context, postID, parentID uuid.UUID, sort models.CommentSort) ([]models.Comment, error) {
	return s.listRepliesFn(ctx, postID, parentID, sort)
}
func (s *commentRepoStub) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.softDeleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, c *models.Comment) error {
			c.ID = uuid.New()
			return nil
		},
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		listByPostFn: func(_ context.Context, _ uuid.UUID, _ models.CommentSort) ([]models.Comment, error) {
			return nil, nil
		},
		listRepliesFn: func(_ context.Context, _, _ uuid.UUID, _ models.CommentSort) ([]models.Comment, error) {
			return nil, nil
		},
		softDeleteFn: func(_ context.Context, _ uuid.UUID) (bool, error) { return true, nil },
	}
}

// upvoteRepoStub is a stub for repository.UpvoteRepository.
type upvoteRepoStub struct {
	toggleFn func(context.Context, uuid.UUID, uuid.UUID) (*repository.ToggleResult, error)
}

func (s *upvoteRepoStub) Toggle(ctx context.Context, commentID, userID uuid.UUID) (*repository.ToggleResult, error) {
	return s.toggleFn(ctx, commentID, userID)
}

func assertAppError(t *testing.T, err error, code, message string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Code)
	require.Equal(t, message, appErr.Message)
}

func strPtr(s string) *string { return &s }
