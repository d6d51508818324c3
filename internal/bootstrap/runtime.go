// Package bootstrap wires the process-wide runtime: database, Redis and development fixtures.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"agora/internal/cache"
	"agora/internal/config"
	"agora/internal/database"
	"agora/internal/middleware"
	"agora/internal/models"
	"agora/internal/repository"
	"agora/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// InitRuntime connects to the database and Redis, then applies development fixtures.
// The Redis client is nil when REDIS_URL is unset or unreachable.
func InitRuntime(cfg *config.Config) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	r := cache.InitRedis(cfg.RedisURL)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := Prepare(ctx, cfg, db); err != nil {
		_ = database.Close(db)
		return nil, nil, err
	}

	return db, r, nil
}

// Prepare applies development-only fixtures to an open database.
func Prepare(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	if !isDevelopment(cfg) {
		return nil
	}
	if err := ensureDevAdmin(ctx, cfg, db); err != nil {
		return fmt.Errorf("failed to bootstrap development admin: %w", err)
	}
	if cfg.SeedDemoData {
		if err := seedIfEmpty(ctx, db); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}
	return nil
}

func isDevelopment(cfg *config.Config) bool {
	return cfg != nil && strings.EqualFold(cfg.Env, "development")
}

// ensureDevAdmin makes the configured Clerk identity a local admin, creating the row when needed.
func ensureDevAdmin(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	clerkID := strings.TrimSpace(cfg.DevAdminClerkID)
	if clerkID == "" {
		return nil
	}

	users := repository.NewUserRepository(db)
	user, err := users.GetByClerkID(ctx, clerkID)
	switch {
	case models.IsCode(err, models.CodeNotFound):
		email := strings.TrimSpace(strings.ToLower(cfg.DevAdminEmail))
		if email == "" {
			email = "admin@agora.local"
		}
		user = &models.User{
			ClerkUserID: clerkID,
			Name:        "Development Admin",
			Email:       email,
			Role:        models.RoleAdmin,
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
	case err != nil:
		return err
	case user.IsAdmin():
		return nil
	default:
		user.Role = models.RoleAdmin
		if err := users.Update(ctx, user); err != nil {
			return err
		}
	}

	middleware.Logger.InfoContext(ctx, "development admin ensured",
		slog.String("clerk_user_id", clerkID),
		slog.String("user_id", user.ID.String()),
	)
	return nil
}

func seedIfEmpty(ctx context.Context, db *gorm.DB) error {
	var n int64
	if err := db.WithContext(ctx).Model(&models.Post{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	_, err := seed.NewSeeder(db).Run(ctx, seed.DefaultOptions())
	return err
}
