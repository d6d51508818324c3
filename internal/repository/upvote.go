package repository

import (
	"context"
	"errors"

	"agora/internal/models"
	"agora/internal/observability"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ToggleResult is the outcome of one upvote toggle.
type ToggleResult struct {
	CommentID uuid.UUID
	Added     bool
	Upvotes   int
}

// UpvoteRepository defines the upvote toggle.
type UpvoteRepository interface {
	Toggle(ctx context.Context, commentID, userID uuid.UUID) (*ToggleResult, error)
}

type upvoteRepository struct {
	db *gorm.DB
}

// NewUpvoteRepository creates a new UpvoteRepository
func NewUpvoteRepository(db *gorm.DB) UpvoteRepository {
	return &upvoteRepository{db: db}
}

// Toggle adds the user's vote when absent and removes it when present. The comment row is
// locked for the duration so the counter always matches the number of vote rows.
func (r *upvoteRepository) Toggle(ctx context.Context, commentID, userID uuid.UUID) (*ToggleResult, error) {
	defer observability.TrackQuery("toggle", "upvotes")()

	result := &ToggleResult{CommentID: commentID}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Select("id")
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var comment models.Comment
		if err := q.Where("id = ?", commentID).Take(&comment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Comment")
			}
			return err
		}

		var existing models.Upvote
		err := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).Take(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Comment{}).Where("id = ?", commentID).
				UpdateColumn("upvotes", gorm.Expr("upvotes - ?", 1)).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.Upvote{CommentID: commentID, UserID: userID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Comment{}).Where("id = ?", commentID).
				UpdateColumn("upvotes", gorm.Expr("upvotes + ?", 1)).Error; err != nil {
				return err
			}
			result.Added = true
		default:
			return err
		}

		return tx.Model(&models.Comment{}).Select("upvotes").Where("id = ?", commentID).Scan(&result.Upvotes).Error
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, models.NewInternalError(err)
	}
	return result, nil
}
