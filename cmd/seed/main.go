// Command main runs the database seeder for the forum.
package main

import (
	"context"
	"flag"
	"log"

	"agora/internal/config"
	"agora/internal/database"
	"agora/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	defaults := seed.DefaultOptions()
	numUsers := flag.Int("users", defaults.Users, "Number of users to create")
	numAdmins := flag.Int("admins", defaults.Admins, "How many of the users are admins")
	numPosts := flag.Int("posts", defaults.Posts, "Number of posts to create")
	perPost := flag.Int("comments", defaults.CommentsPerPost, "Comments per post")
	seedValue := flag.Int64("seed", 0, "Random seed (0 picks one)")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d posts, %d comments per post, clean=%v\n", *numUsers, *numPosts, *perPost, *shouldClean)

	_ = godotenv.Load()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	ctx := context.Background()
	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(ctx); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	opts := defaults
	opts.Users = *numUsers
	opts.Admins = *numAdmins
	opts.Posts = *numPosts
	opts.CommentsPerPost = *perPost
	opts.Seed = *seedValue

	sum, err := s.Run(ctx, opts)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("All done: %d users, %d posts, %d comments, %d upvotes", sum.Users, sum.Posts, sum.Comments, sum.Upvotes)
}
