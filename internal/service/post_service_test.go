package service

import (
	"context"
	"strings"
	"testing"

	"agora/internal/featureflags"
	"agora/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostRepo(), noopUserRepo(), nil)
	ctx := context.Background()
	author := uuid.New().String()

	tests := []struct {
		name string
		in   CreatePostInput
		msg  string
	}{
		{"blank title", CreatePostInput{Title: "  ", Body: "b", AuthorID: author}, "Title is required"},
		{"long title", CreatePostInput{Title: strings.Repeat("t", 201), Body: "b", AuthorID: author}, "Title must be at most 200 characters"},
		{"blank body", CreatePostInput{Title: "t", Body: "", AuthorID: author}, "Body is required"},
		{"whitespace body", CreatePostInput{Title: "t", Body: " \n\t ", AuthorID: author}, "Body is required"},
		{"blank author", CreatePostInput{Title: "t", Body: "b"}, "Author ID is required and cannot be empty"},
		{"bad author", CreatePostInput{Title: "t", Body: "b", AuthorID: "42"}, "Invalid author ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreatePost(ctx, tt.in)
			assertAppError(t, err, models.CodeValidation, tt.msg)
		})
	}
}

func TestPostService_CreatePost_StoresBodyAsReceived(t *testing.T) {
	t.Parallel()

	var stored *models.Post
	repo := noopPostRepo()
	repo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = uuid.New()
		stored = p
		return nil
	}
	author := uuid.New()
	body := "Q&A: it's <fine>\nI don't think 5 > 3 & \"Tom\""

	post, err := NewPostService(repo, noopUserRepo(), nil).CreatePost(context.Background(), CreatePostInput{
		Title:    " Hello ",
		Body:     body,
		AuthorID: author.String(),
	})

	require.NoError(t, err)
	assert.Same(t, stored, post)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, body, post.Body)
	assert.Equal(t, author, post.AuthorID)
	assert.False(t, post.IsDeleted)
}

func TestPostService_ListRecent_Empty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := NewPostService(noopPostRepo(), noopUserRepo(), nil).ListRecent(ctx)
	assertAppError(t, err, models.CodeNotFound, "No posts found for this user")

	posts, err := NewPostService(noopPostRepo(), noopUserRepo(), featureflags.NewManager("empty_list_ok=on")).ListRecent(ctx)
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestPostService_ListByAuthor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	author := uuid.New()

	repo := noopPostRepo()
	repo.listByAuthorFn = func(_ context.Context, id uuid.UUID) ([]models.Post, error) {
		return []models.Post{{AuthorID: id, IsDeleted: true}}, nil
	}
	svc := NewPostService(repo, noopUserRepo(), nil)

	_, err := svc.ListByAuthor(ctx, "")
	assertAppError(t, err, models.CodeValidation, "Author ID is required and cannot be empty")

	posts, err := svc.ListByAuthor(ctx, author.String())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.True(t, posts[0].IsDeleted)
}

func TestPostService_DeletePost(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	authorID := uuid.New()
	postID := uuid.New()

	livePost := func(_ context.Context, id uuid.UUID) (*models.Post, error) {
		return &models.Post{ID: id, AuthorID: authorID}, nil
	}

	t.Run("missing ids", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo(), noopUserRepo(), nil)
		_, err := svc.DeletePost(ctx, DeletePostInput{UserID: authorID.String()})
		assertAppError(t, err, models.CodeValidation, "Post ID is required")
		_, err = svc.DeletePost(ctx, DeletePostInput{PostID: postID.String()})
		assertAppError(t, err, models.CodeValidation, "User ID is required")
	})

	t.Run("post not found", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, _ uuid.UUID) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post")
		}
		_, err := NewPostService(repo, noopUserRepo(), nil).DeletePost(ctx, DeletePostInput{PostID: postID.String(), UserID: authorID.String()})
		assertAppError(t, err, models.CodeNotFound, "Post not found")
	})

	t.Run("already deleted", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.Post, error) {
			return &models.Post{ID: id, AuthorID: authorID, IsDeleted: true}, nil
		}
		_, err := NewPostService(repo, noopUserRepo(), nil).DeletePost(ctx, DeletePostInput{PostID: postID.String(), UserID: authorID.String()})
		assertAppError(t, err, models.CodeValidation, "Post is already deleted")
	})

	t.Run("lost race reports already deleted", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = livePost
		repo.softDeleteFn = func(_ context.Context, _ uuid.UUID) (bool, error) { return false, nil }
		_, err := NewPostService(repo, noopUserRepo(), nil).DeletePost(ctx, DeletePostInput{PostID: postID.String(), UserID: authorID.String()})
		assertAppError(t, err, models.CodeValidation, "Post is already deleted")
	})

	t.Run("user not found", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = livePost
		users := noopUserRepo()
		users.getByIDFn = func(_ context.Context, _ uuid.UUID) (*models.User, error) {
			return nil, models.NewNotFoundError("User")
		}
		_, err := NewPostService(repo, users, nil).DeletePost(ctx, DeletePostInput{PostID: postID.String(), UserID: uuid.NewString()})
		assertAppError(t, err, models.CodeNotFound, "User not found")
	})

	t.Run("stranger is forbidden and nothing is deleted", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = livePost
		repo.softDeleteFn = func(_ context.Context, _ uuid.UUID) (bool, error) {
			t.Fatal("forbidden delete must not touch the row")
			return false, nil
		}
		_, err := NewPostService(repo, noopUserRepo(), nil).DeletePost(ctx, DeletePostInput{PostID: postID.String(), UserID: uuid.NewString()})
		assertAppError(t, err, models.CodeForbidden, "You do not have permission to delete this post")
	})

	t.Run("author deletes", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = livePost
		id, err := NewPostService(repo, noopUserRepo(), nil).DeletePost(ctx, DeletePostInput{PostID: postID.String(), UserID: authorID.String()})
		require.NoError(t, err)
		assert.Equal(t, postID, id)
	})

	t.Run("admin deletes", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = livePost
		users := noopUserRepo()
		users.getByIDFn = func(_ context.Context, id uuid.UUID) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleAdmin}, nil
		}
		id, err := NewPostService(repo, users, nil).DeletePost(ctx, DeletePostInput{PostID: postID.String(), UserID: uuid.NewString()})
		require.NoError(t, err)
		assert.Equal(t, postID, id)
	})
}
