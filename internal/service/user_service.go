package service

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"agora/internal/middleware"
	"agora/internal/models"
	"agora/internal/repository"

	"github.com/google/uuid"
)

type UserService struct {
	userRepo repository.UserRepository
}

type CreateUserInput struct {
	Name        string
	ClerkUserID string
	Email       string
	AvatarURL   *string
}

type GetUserInput struct {
	ClerkUserID string
	ID          string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// CreateUser registers a user with the default role. Email and clerk id must both be unused.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	clerkID := strings.TrimSpace(in.ClerkUserID)
	email := strings.TrimSpace(in.Email)

	if name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if clerkID == "" {
		return nil, models.NewValidationError("Clerk user ID is required")
	}
	if !validEmail(email) {
		return nil, models.NewValidationError("Invalid email address")
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		middleware.Logger.WarnContext(ctx, "User email already exists", slog.String("email", email))
		return nil, models.NewConflictError("User email already exists")
	}

	if _, err := s.userRepo.GetByClerkID(ctx, clerkID); err == nil {
		middleware.Logger.WarnContext(ctx, "User clerk ID already exists", slog.String("clerk_user_id", clerkID))
		return nil, models.NewConflictError("User clerk ID already exists")
	} else if !models.IsCode(err, models.CodeNotFound) {
		return nil, err
	}

	user := &models.User{
		ClerkUserID: clerkID,
		Name:        name,
		Email:       email,
		AvatarURL:   in.AvatarURL,
		Role:        models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "User created", slog.String("user_id", user.ID.String()))
	return user, nil
}

// GetUser looks a user up by clerk id, or by id when no clerk id is given.
func (s *UserService) GetUser(ctx context.Context, in GetUserInput) (*models.User, error) {
	clerkID := strings.TrimSpace(in.ClerkUserID)
	rawID := strings.TrimSpace(in.ID)

	if clerkID == "" && rawID == "" {
		return nil, models.NewValidationError("clerk_user_id or id is required")
	}
	if clerkID != "" {
		return s.userRepo.GetByClerkID(ctx, clerkID)
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, models.NewValidationError("Invalid user ID")
	}
	return s.userRepo.GetByID(ctx, id)
}
