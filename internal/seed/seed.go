package seed

import (
	"context"
	"fmt"
	"log/slog"

	"agora/internal/middleware"
	"agora/internal/models"

	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	Users           int
	Admins          int
	Posts           int
	CommentsPerPost int
	// ReplyPercent is the chance that a comment answers an earlier one on the same post.
	ReplyPercent int
	// DeletedPercent is the chance that a seeded post or comment is soft-deleted.
	DeletedPercent int
	Seed           int64
}

// DefaultOptions returns a small but lively forum.
func DefaultOptions() Options {
	return Options{
		Users:           20,
		Admins:          1,
		Posts:           40,
		CommentsPerPost: 6,
		ReplyPercent:    35,
		DeletedPercent:  5,
	}
}

// Summary counts what a run created.
type Summary struct {
	Users    int
	Posts    int
	Comments int
	Upvotes  int
}

// Seeder populates a database with demo forum content.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a Seeder bound to db.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll removes every forum row, children first.
func (s *Seeder) ClearAll(ctx context.Context) error {
	for _, table := range []string{"upvotes", "comments", "posts", "users"} {
		if err := s.db.WithContext(ctx).Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	middleware.Logger.InfoContext(ctx, "Cleared forum tables")
	return nil
}

// Run seeds users, posts, threaded comments and upvotes.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Summary, error) {
	if opts.Users <= 0 {
		return nil, fmt.Errorf("at least one user is required")
	}
	f := NewFactory(s.db, opts.Seed, 0)
	sum := &Summary{}

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		role := models.RoleUser
		if i < opts.Admins {
			role = models.RoleAdmin
		}
		u, err := f.CreateUser(ctx, func(u *models.User) { u.Role = role })
		if err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		users = append(users, u)
	}
	sum.Users = len(users)

	for i := 0; i < opts.Posts; i++ {
		post, err := f.CreatePost(ctx, users[f.pick(len(users))])
		if err != nil {
			return nil, fmt.Errorf("create post: %w", err)
		}
		sum.Posts++

		if err := s.seedThread(ctx, f, post, users, opts, sum); err != nil {
			return nil, err
		}

		if f.chance(opts.DeletedPercent) {
			if _, err := f.posts.SoftDelete(ctx, post.ID); err != nil {
				return nil, fmt.Errorf("delete post: %w", err)
			}
		}
	}

	middleware.Logger.InfoContext(ctx, "Seeding complete",
		slog.Int("users", sum.Users),
		slog.Int("posts", sum.Posts),
		slog.Int("comments", sum.Comments),
		slog.Int("upvotes", sum.Upvotes),
	)
	return sum, nil
}

func (s *Seeder) seedThread(ctx context.Context, f *Factory, post *models.Post, users []*models.User, opts Options, sum *Summary) error {
	thread := make([]*models.Comment, 0, opts.CommentsPerPost)

	for i := 0; i < opts.CommentsPerPost; i++ {
		var parent *models.Comment
		if len(thread) > 0 && f.chance(opts.ReplyPercent) {
			parent = thread[f.pick(len(thread))]
		}
		comment, err := f.CreateComment(ctx, post, users[f.pick(len(users))], parent)
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		thread = append(thread, comment)
		sum.Comments++

		// Each user votes at most once, so every toggle adds.
		for _, voter := range users {
			if !f.chance(30) {
				continue
			}
			if _, err := f.Upvote(ctx, comment.ID, voter.ID); err != nil {
				return fmt.Errorf("upvote comment: %w", err)
			}
			sum.Upvotes++
		}

		if f.chance(opts.DeletedPercent) {
			if _, err := f.comments.SoftDelete(ctx, comment.ID); err != nil {
				return fmt.Errorf("delete comment: %w", err)
			}
		}
	}
	return nil
}
