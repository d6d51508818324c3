package server

import (
	"errors"
	"log/slog"

	"agora/internal/middleware"
	"agora/internal/models"
	"agora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps an application error onto the response status.
// Every failure is a 400 except permission errors.
func statusFor(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == models.CodeForbidden {
		return fiber.StatusForbidden
	}
	return fiber.StatusBadRequest
}

// respondError writes err with the status chosen by statusFor.
// Errors that are not AppErrors are logged and replaced by the generic message.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		appErr = models.NewInternalError(err)
	}
	if appErr.Code == models.CodeInternal {
		middleware.Logger.ErrorContext(c.UserContext(), "request failed",
			slog.String("path", c.Path()),
			slog.String("error", appErr.Error()),
		)
	}
	return models.RespondWithError(c, statusFor(appErr), appErr)
}

func invalidBody(c *fiber.Ctx) error {
	return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
}

func (s *Server) userSvc() *service.UserService {
	if s.userService == nil {
		s.userService = service.NewUserService(s.userRepo)
	}
	return s.userService
}

func (s *Server) identitySvc() *service.IdentityService {
	if s.identityService == nil {
		s.identityService = service.NewIdentityService(s.userRepo)
	}
	return s.identityService
}

func (s *Server) postSvc() *service.PostService {
	if s.postService == nil {
		s.postService = service.NewPostService(s.postRepo, s.userRepo, s.featureFlags)
	}
	return s.postService
}

func (s *Server) commentSvc() *service.CommentService {
	if s.commentService == nil {
		s.commentService = service.NewCommentService(s.commentRepo, s.userRepo, s.featureFlags)
	}
	return s.commentService
}

func (s *Server) upvoteSvc() *service.UpvoteService {
	if s.upvoteService == nil {
		s.upvoteService = service.NewUpvoteService(s.upvoteRepo)
	}
	return s.upvoteService
}
