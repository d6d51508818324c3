package service

import (
	"context"
	"errors"
	"testing"

	"agora/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateUser_Validation(t *testing.T) {
	t.Parallel()

	svc := NewUserService(noopUserRepo())
	ctx := context.Background()

	tests := []struct {
		name string
		in   CreateUserInput
		msg  string
	}{
		{"blank name", CreateUserInput{Name: " ", ClerkUserID: "user_1", Email: "a@example.com"}, "Name is required"},
		{"blank clerk id", CreateUserInput{Name: "A", Email: "a@example.com"}, "Clerk user ID is required"},
		{"bad email", CreateUserInput{Name: "A", ClerkUserID: "user_1", Email: "not-an-email"}, "Invalid email address"},
		{"display name email", CreateUserInput{Name: "A", ClerkUserID: "user_1", Email: "A <a@example.com>"}, "Invalid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreateUser(ctx, tt.in)
			assertAppError(t, err, models.CodeValidation, tt.msg)
		})
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	t.Parallel()

	var stored *models.User
	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, u *models.User) error {
		u.ID = uuid.New()
		stored = u
		return nil
	}

	svc := NewUserService(repo)
	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		Name:        "Ada",
		ClerkUserID: "user_ada",
		Email:       "ada@example.com",
		AvatarURL:   strPtr("https://img.example.com/ada.png"),
	})

	require.NoError(t, err)
	assert.Same(t, stored, user)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.IsDeleted)
	assert.NotEqual(t, uuid.Nil, user.ID)
	require.NotNil(t, user.AvatarURL)
}

func TestUserService_CreateUser_Conflicts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	in := CreateUserInput{Name: "Ada", ClerkUserID: "user_ada", Email: "ada@example.com"}

	t.Run("email taken", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, _ string) (*models.User, error) {
			return &models.User{ID: uuid.New()}, nil
		}
		_, err := NewUserService(repo).CreateUser(ctx, in)
		assertAppError(t, err, models.CodeConflict, "User email already exists")
	})

	t.Run("clerk id taken", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByClerkIDFn = func(_ context.Context, _ string) (*models.User, error) {
			return &models.User{ID: uuid.New()}, nil
		}
		_, err := NewUserService(repo).CreateUser(ctx, in)
		assertAppError(t, err, models.CodeConflict, "User clerk ID already exists")
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByClerkIDFn = func(_ context.Context, _ string) (*models.User, error) {
			return nil, models.NewInternalError(errors.New("db down"))
		}
		_, err := NewUserService(repo).CreateUser(ctx, in)
		assert.True(t, models.IsCode(err, models.CodeInternal))
	})
}

func TestUserService_GetUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	id := uuid.New()

	repo := noopUserRepo()
	repo.getByClerkIDFn = func(_ context.Context, clerkID string) (*models.User, error) {
		return &models.User{ClerkUserID: clerkID}, nil
	}
	svc := NewUserService(repo)

	_, err := svc.GetUser(ctx, GetUserInput{})
	assertAppError(t, err, models.CodeValidation, "clerk_user_id or id is required")

	_, err = svc.GetUser(ctx, GetUserInput{ID: "nope"})
	assertAppError(t, err, models.CodeValidation, "Invalid user ID")

	byClerk, err := svc.GetUser(ctx, GetUserInput{ClerkUserID: "user_x", ID: id.String()})
	require.NoError(t, err)
	assert.Equal(t, "user_x", byClerk.ClerkUserID, "clerk_user_id wins when both are given")

	byID, err := svc.GetUser(ctx, GetUserInput{ID: id.String()})
	require.NoError(t, err)
	assert.Equal(t, id, byID.ID)
}
