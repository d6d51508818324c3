package server

import (
	"errors"
	"log/slog"
	"net/http"

	"agora/internal/middleware"
	"agora/internal/models"
	"agora/internal/observability"
	"agora/internal/service"

	"github.com/gofiber/fiber/v2"
	svix "github.com/svix/svix-webhooks/go"
)

const (
	headerSvixID        = "svix-id"
	headerSvixTimestamp = "svix-timestamp"
	headerSvixSignature = "svix-signature"
)

type webhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func webhookError(c *fiber.Ctx, message string) error {
	return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError(message))
}

// ClerkWebhook handles POST /clerk-webhook
// @Summary Clerk identity webhook
// @Description Verifies a svix-signed Clerk user event and mirrors it into the users table
// @Tags users
// @Accept json
// @Produce json
// @Param svix-id header string true "Delivery id"
// @Param svix-timestamp header string true "Delivery timestamp"
// @Param svix-signature header string true "Delivery signature"
// @Param request body service.ClerkEvent true "Clerk event"
// @Success 200 {object} webhookResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /clerk-webhook [post]
func (s *Server) ClerkWebhook(c *fiber.Ctx) error {
	ctx := c.UserContext()

	secret := ""
	if s.config != nil {
		secret = s.config.ClerkWebhookSecret
	}
	if secret == "" {
		middleware.Logger.ErrorContext(ctx, "CLERK_WEBHOOK_SECRET is not set")
		return webhookError(c, "Webhook secret not configured")
	}

	msgID := c.Get(headerSvixID)
	timestamp := c.Get(headerSvixTimestamp)
	signature := c.Get(headerSvixSignature)
	if msgID == "" || timestamp == "" || signature == "" {
		observability.RecordWebhook("", "missing_headers")
		return webhookError(c, "Missing svix headers")
	}

	wh, err := svix.NewWebhook(secret)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "CLERK_WEBHOOK_SECRET is malformed", slog.String("error", err.Error()))
		return webhookError(c, "Webhook secret not configured")
	}

	headers := http.Header{}
	headers.Set(headerSvixID, msgID)
	headers.Set(headerSvixTimestamp, timestamp)
	headers.Set(headerSvixSignature, signature)
	if err := wh.Verify(c.Body(), headers); err != nil {
		middleware.Logger.WarnContext(ctx, "Webhook signature rejected",
			slog.String("svix_id", msgID),
			slog.String("error", err.Error()),
		)
		observability.RecordWebhook("", "invalid_signature")
		return webhookError(c, "Invalid webhook signature")
	}

	seen, err := s.deliveries.Seen(ctx, msgID)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "Delivery ledger lookup failed", slog.String("error", err.Error()))
	}
	if seen {
		observability.RecordWebhook("", "duplicate")
		return c.JSON(webhookResponse{Success: true, Message: "Webhook already processed"})
	}

	var evt service.ClerkEvent
	if err := c.BodyParser(&evt); err != nil {
		return invalidBody(c)
	}

	message, err := s.identitySvc().Sync(ctx, evt)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code != models.CodeInternal {
			observability.RecordWebhook(evt.Type, "rejected")
			return webhookError(c, appErr.Message)
		}
		middleware.Logger.ErrorContext(ctx, "Webhook processing failed",
			slog.String("event_type", evt.Type),
			slog.String("error", err.Error()),
		)
		observability.RecordWebhook(evt.Type, "failed")
		return webhookError(c, "Failed to process webhook")
	}

	if err := s.deliveries.Record(ctx, msgID); err != nil {
		middleware.Logger.WarnContext(ctx, "Delivery ledger write failed", slog.String("error", err.Error()))
	}
	observability.RecordWebhook(evt.Type, "processed")

	return c.JSON(webhookResponse{Success: true, Message: message})
}
