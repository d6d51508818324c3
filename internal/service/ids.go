// Package service holds the forum's business rules on top of the repositories.
package service

import (
	"strings"

	"agora/internal/models"

	"github.com/google/uuid"
)

// parseRequiredID parses a request identifier, reporting missing and malformed values separately.
func parseRequiredID(raw, requiredMsg, invalidMsg string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, models.NewValidationError(requiredMsg)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, models.NewValidationError(invalidMsg)
	}
	return id, nil
}

// emptyListError is the not-found answer list endpoints give for zero rows.
func emptyListError(message string) error {
	return &models.AppError{Code: models.CodeNotFound, Message: message}
}
