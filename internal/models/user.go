// Package models contains the persisted forum entities and the application error type.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// ParseRole returns the role named by s, or false when s is not a known role.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// User is a forum identity, mirrored from the identity provider.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClerkUserID string    `gorm:"column:clerk_user_id;size:255;not null;uniqueIndex" json:"clerk_user_id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Email       string    `gorm:"size:255;not null;index" json:"email"`
	AvatarURL   *string   `gorm:"column:avatar_url;size:255" json:"avatar_url"`
	Role        Role      `gorm:"size:20;not null;default:user" json:"role"`
	IsDeleted   bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate assigns the identifier and default role.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}

// BeforeSave rejects roles outside the closed set.
func (u *User) BeforeSave(_ *gorm.DB) error {
	if u.Role != "" && !u.Role.Valid() {
		return fmt.Errorf("invalid role %q", u.Role)
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Profile is the public projection of a user joined onto posts and comments.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `json:"name"`
	AvatarURL *string   `gorm:"column:avatar_url" json:"avatar_url"`
	Role      Role      `json:"role"`
}

// TableName maps Profile onto the users table.
func (Profile) TableName() string {
	return "users"
}
