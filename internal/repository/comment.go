package repository

import (
	"context"
	"errors"

	"agora/internal/models"
	"agora/internal/observability"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID, sort models.CommentSort) ([]models.Comment, error)
	ListReplies(ctx context.Context, postID, parentID uuid.UUID, sort models.CommentSort) ([]models.Comment, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (bool, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts the comment and loads its author profile.
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	defer observability.TrackQuery("insert", "comments")()

	db := r.db.WithContext(ctx)
	if err := db.Omit("User", "Replies").Create(comment).Error; err != nil {
		// The parent reference is the only foreign key on comments.
		if isForeignKeyError(err) && comment.ParentCommentID != nil {
			return models.NewNotFoundError("Parent comment")
		}
		return models.NewInternalError(err)
	}

	var profile models.Profile
	if err := db.Where("id = ?", comment.UserID).Take(&profile).Error; err == nil {
		comment.User = &profile
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	defer observability.TrackQuery("select", "comments")()

	var comment models.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment")
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

// ListByPost returns every comment on the post, replies and deleted ones included.
func (r *commentRepository) ListByPost(
	ctx context.Context,
	postID uuid.UUID,
	sort models.CommentSort,
) ([]models.Comment, error) {
	defer observability.TrackQuery("select", "comments")()

	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order(sort.OrderClause()).
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

// ListReplies returns the direct replies to parentID on the post.
func (r *commentRepository) ListReplies(
	ctx context.Context,
	postID, parentID uuid.UUID,
	sort models.CommentSort,
) ([]models.Comment, error) {
	defer observability.TrackQuery("select", "comments")()

	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ? AND parent_comment_id = ?", postID, parentID).
		Order(sort.OrderClause()).
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

// SoftDelete flips is_deleted on a live comment. It reports false when the comment was already deleted.
func (r *commentRepository) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	defer observability.TrackQuery("update", "comments")()

	result := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected == 1, nil
}
