package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentSort selects the ordering of comment listings.
type CommentSort string

const (
	SortNewest  CommentSort = "created_at"
	SortOldest  CommentSort = "oldest"
	SortUpvotes CommentSort = "upvotes"
)

// ParseCommentSort maps a request value to a sort, falling back to newest first.
func ParseCommentSort(s string) CommentSort {
	switch CommentSort(s) {
	case SortOldest:
		return SortOldest
	case SortUpvotes:
		return SortUpvotes
	default:
		return SortNewest
	}
}

// OrderClause returns the SQL ORDER BY expression for the sort.
func (s CommentSort) OrderClause() string {
	switch s {
	case SortOldest:
		return "created_at ASC"
	case SortUpvotes:
		return "upvotes DESC, created_at DESC"
	default:
		return "created_at DESC"
	}
}

// Comment is a threaded reply on a post. A nil ParentCommentID marks a top-level comment.
type Comment struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PostID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"post_id"`
	ParentCommentID *uuid.UUID `gorm:"type:uuid;index" json:"parent_comment_id"`
	Replies         []Comment  `gorm:"foreignKey:ParentCommentID;constraint:OnDelete:SET NULL" json:"-"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User            *Profile   `gorm:"foreignKey:UserID;references:ID;constraint:-" json:"user,omitempty"`
	Text            string     `gorm:"type:text;not null" json:"text"`
	Upvotes         int        `gorm:"not null;default:0" json:"upvotes"`
	IsDeleted       bool       `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
}

// BeforeCreate assigns the identifier.
func (c *Comment) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Upvote records one user's vote on one comment. Rows are inserted and removed, never flagged.
type Upvote struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CommentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_upvotes_comment_user" json:"comment_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_upvotes_comment_user" json:"user_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate assigns the identifier.
func (u *Upvote) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
