package service

import (
	"context"
	"log/slog"
	"strings"

	"agora/internal/middleware"
	"agora/internal/models"
	"agora/internal/observability"
	"agora/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// Identity provider event types.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// ClerkEmailAddress is one entry of a Clerk user's email list.
type ClerkEmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// ClerkUserData is the user payload carried by Clerk user events.
type ClerkUserData struct {
	ID             string                 `json:"id"`
	EmailAddresses []ClerkEmailAddress    `json:"email_addresses"`
	FirstName      string                 `json:"first_name"`
	LastName       string                 `json:"last_name"`
	ImageURL       string                 `json:"image_url"`
	Username       string                 `json:"username"`
	PublicMetadata map[string]interface{} `json:"public_metadata"`
}

// ClerkEvent is a verified webhook event.
type ClerkEvent struct {
	Type string        `json:"type"`
	Data ClerkUserData `json:"data"`
}

func (d ClerkUserData) primaryEmail() string {
	if len(d.EmailAddresses) == 0 {
		return ""
	}
	return strings.TrimSpace(d.EmailAddresses[0].EmailAddress)
}

func (d ClerkUserData) fullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

// metadataRole returns the role from public metadata when it names a known role.
func (d ClerkUserData) metadataRole() (models.Role, bool) {
	raw, ok := d.PublicMetadata["role"].(string)
	if !ok {
		return "", false
	}
	return models.ParseRole(raw)
}

type IdentityService struct {
	userRepo repository.UserRepository
}

func NewIdentityService(userRepo repository.UserRepository) *IdentityService {
	return &IdentityService{userRepo: userRepo}
}

// Sync applies a Clerk user event to the local users table and returns the success message.
func (s *IdentityService) Sync(ctx context.Context, evt ClerkEvent) (message string, err error) {
	ctx, span := observability.StartSpan(ctx, "IdentityService.Sync",
		attribute.String("event.type", evt.Type),
		attribute.String("clerk.user_id", evt.Data.ID),
	)
	defer func() { observability.EndSpan(span, err) }()

	middleware.Logger.InfoContext(ctx, "Clerk webhook received",
		slog.String("event_type", evt.Type),
		slog.String("clerk_user_id", evt.Data.ID),
	)

	switch evt.Type {
	case EventUserCreated:
		return s.userCreated(ctx, evt.Data)
	case EventUserUpdated:
		return s.userUpdated(ctx, evt.Data)
	case EventUserDeleted:
		return s.userDeleted(ctx, evt.Data)
	default:
		return "", models.NewValidationError("Unsupported event type")
	}
}

func (s *IdentityService) userCreated(ctx context.Context, data ClerkUserData) (string, error) {
	email := data.primaryEmail()
	if email == "" {
		return "", models.NewValidationError("No email address found")
	}

	name := data.fullName()
	if name == "" {
		name = data.Username
	}
	if name == "" {
		name = "Anonymous User"
	}

	role, ok := data.metadataRole()
	if !ok {
		role = models.RoleUser
	}

	if _, err := s.userRepo.GetByClerkID(ctx, data.ID); err == nil {
		middleware.Logger.InfoContext(ctx, "User already exists", slog.String("clerk_user_id", data.ID))
		return "User already exists", nil
	} else if !models.IsCode(err, models.CodeNotFound) {
		return "", err
	}

	user := &models.User{
		ClerkUserID: data.ID,
		Name:        name,
		Email:       email,
		Role:        role,
	}
	if data.ImageURL != "" {
		avatar := data.ImageURL
		user.AvatarURL = &avatar
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if models.IsCode(err, models.CodeConflict) {
			return "User already exists", nil
		}
		return "", err
	}

	middleware.Logger.InfoContext(ctx, "User created from webhook",
		slog.String("clerk_user_id", data.ID),
		slog.String("user_id", user.ID.String()),
	)
	return "User created successfully", nil
}

func (s *IdentityService) userUpdated(ctx context.Context, data ClerkUserData) (string, error) {
	user, err := s.userRepo.GetByClerkID(ctx, data.ID)
	if err != nil {
		return "", err
	}

	switch {
	case data.Username != "":
		user.Name = data.Username
	case data.fullName() != "":
		user.Name = data.fullName()
	}
	if email := data.primaryEmail(); email != "" {
		user.Email = email
	}
	if data.ImageURL != "" {
		avatar := data.ImageURL
		user.AvatarURL = &avatar
	}
	if role, ok := data.metadataRole(); ok {
		user.Role = role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}

	middleware.Logger.InfoContext(ctx, "User updated from webhook", slog.String("clerk_user_id", data.ID))
	return "User updated successfully", nil
}

func (s *IdentityService) userDeleted(ctx context.Context, data ClerkUserData) (string, error) {
	user, err := s.userRepo.GetByClerkID(ctx, data.ID)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.SoftDelete(ctx, user.ID); err != nil {
		return "", err
	}
	observability.SoftDeletesTotal.WithLabelValues("user").Inc()

	middleware.Logger.InfoContext(ctx, "User deleted from webhook", slog.String("clerk_user_id", data.ID))
	return "User deleted successfully", nil
}
