package repository

import (
	"testing"
	"time"

	"agora/internal/database"
	"agora/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB creates a GORM *gorm.DB backed by sqlmock for SQL-shape tests.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gormDB, mock
}

// setupSQLiteDB creates a migrated in-memory database for behavioural tests.
func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func seedUser(t *testing.T, db *gorm.DB, clerkID string, role models.Role) *models.User {
	t.Helper()
	u := &models.User{
		ClerkUserID: clerkID,
		Name:        "User " + clerkID,
		Email:       clerkID + "@example.com",
		Role:        role,
		CreatedAt:   baseTime,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedPost(t *testing.T, db *gorm.DB, author *models.User, title string, createdAt time.Time, deleted bool) *models.Post {
	t.Helper()
	p := &models.Post{
		Title:     title,
		Body:      "body of " + title,
		AuthorID:  author.ID,
		IsDeleted: deleted,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Omit("Author").Create(p).Error)
	return p
}

func seedComment(t *testing.T, db *gorm.DB, post *models.Post, user *models.User, parent *models.Comment, upvotes int, createdAt time.Time) *models.Comment {
	t.Helper()
	c := &models.Comment{
		PostID:    post.ID,
		UserID:    user.ID,
		Text:      "comment",
		Upvotes:   upvotes,
		CreatedAt: createdAt,
	}
	if parent != nil {
		c.ParentCommentID = &parent.ID
	}
	require.NoError(t, db.Omit("User", "Replies").Create(c).Error)
	return c
}
