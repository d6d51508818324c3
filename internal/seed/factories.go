// Package seed provides helpers to create demo data for the forum database.
// These helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agora/internal/models"
	"agora/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Factory builds forum entities with fake content and persists them through the repositories.
type Factory struct {
	faker    *gofakeit.Faker
	now      time.Time
	maxDays  int
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	upvotes  repository.UpvoteRepository
}

// NewFactory creates a Factory bound to db. A zero seed picks a random one.
func NewFactory(db *gorm.DB, seed int64, maxDays int) *Factory {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if maxDays <= 0 {
		maxDays = 30
	}
	return &Factory{
		faker:    gofakeit.New(seed),
		now:      time.Now().UTC(),
		maxDays:  maxDays,
		users:    repository.NewUserRepository(db),
		posts:    repository.NewPostRepository(db),
		comments: repository.NewCommentRepository(db),
		upvotes:  repository.NewUpvoteRepository(db),
	}
}

// pastTime returns a realistic created_at within the configured window.
func (f *Factory) pastTime() time.Time {
	back := time.Duration(f.faker.Number(0, f.maxDays-1))*24*time.Hour +
		time.Duration(f.faker.Number(0, 23))*time.Hour +
		time.Duration(f.faker.Number(0, 59))*time.Minute
	return f.now.Add(-back)
}

// CreateUser builds and persists a user. Overrides run before saving.
func (f *Factory) CreateUser(ctx context.Context, overrides ...func(*models.User)) (*models.User, error) {
	first, last := f.faker.FirstName(), f.faker.LastName()
	avatar := fmt.Sprintf("https://i.pravatar.cc/150?u=%s", f.faker.UUID())
	user := &models.User{
		ClerkUserID: "user_seed_" + strings.ReplaceAll(f.faker.UUID(), "-", ""),
		Name:        first + " " + last,
		Email:       strings.ToLower(fmt.Sprintf("%s.%s.%d@example.com", first, last, f.faker.Number(1000, 9999))),
		AvatarURL:   &avatar,
		Role:        models.RoleUser,
		CreatedAt:   f.pastTime(),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost builds and persists a post by author.
func (f *Factory) CreatePost(ctx context.Context, author *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Title:     strings.TrimSuffix(f.faker.Sentence(f.faker.Number(3, 8)), "."),
		Body:      f.faker.Paragraph(1, 3, 12, "\n\n"),
		AuthorID:  author.ID,
		CreatedAt: f.pastTime(),
	}
	if f.faker.Number(0, 2) == 0 {
		image := fmt.Sprintf("https://picsum.photos/seed/%s/800/600", f.faker.UUID())
		post.ImageURL = &image
	}
	for _, override := range overrides {
		override(post)
	}

	if err := f.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment builds and persists a comment on post. A non-nil parent makes it a reply.
func (f *Factory) CreateComment(ctx context.Context, post *models.Post, author *models.User, parent *models.Comment) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:    post.ID,
		UserID:    author.ID,
		Text:      f.faker.Sentence(f.faker.Number(4, 20)),
		CreatedAt: post.CreatedAt.Add(time.Duration(f.faker.Number(1, 48*60)) * time.Minute),
	}
	if parent != nil {
		comment.ParentCommentID = &parent.ID
		comment.CreatedAt = parent.CreatedAt.Add(time.Duration(f.faker.Number(1, 12*60)) * time.Minute)
	}
	if comment.CreatedAt.After(f.now) {
		comment.CreatedAt = f.now
	}

	if err := f.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Upvote toggles a vote on a comment and returns the counter afterwards.
func (f *Factory) Upvote(ctx context.Context, commentID, userID uuid.UUID) (int, error) {
	res, err := f.upvotes.Toggle(ctx, commentID, userID)
	if err != nil {
		return 0, err
	}
	return res.Upvotes, nil
}

// chance reports true with probability pct/100.
func (f *Factory) chance(pct int) bool {
	return f.faker.Number(0, 99) < pct
}

// pick returns a random element index in [0, n).
func (f *Factory) pick(n int) int {
	return f.faker.Number(0, n-1)
}
