package server

import (
	"agora/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createUserRequest struct {
	Name        string  `json:"name"`
	ClerkUserID string  `json:"clerk_user_id"`
	Email       string  `json:"email"`
	AvatarURL   *string `json:"avatar_url"`
}

type getUserRequest struct {
	ClerkUserID string `json:"clerk_user_id"`
	ID          string `json:"id"`
}

// CreateUser handles POST /create-user
// @Summary Create user
// @Description Register a forum user mirrored from Clerk
// @Tags users
// @Accept json
// @Produce json
// @Param request body createUserRequest true "User fields"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Router /create-user [post]
func (s *Server) CreateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	user, err := s.userSvc().CreateUser(ctx, service.CreateUserInput{
		Name:        req.Name,
		ClerkUserID: req.ClerkUserID,
		Email:       req.Email,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUser handles POST /get-user
// @Summary Get user
// @Description Look up a user by Clerk id or local id. clerk_user_id wins when both are given.
// @Tags users
// @Accept json
// @Produce json
// @Param request body getUserRequest true "Lookup keys"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Router /get-user [post]
func (s *Server) GetUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req getUserRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	user, err := s.userSvc().GetUser(ctx, service.GetUserInput{
		ClerkUserID: req.ClerkUserID,
		ID:          req.ID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}
