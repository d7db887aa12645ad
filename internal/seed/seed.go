package seed

import (
	"fmt"
	"log"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with demo users, profiles and posts.
func Seed(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 10
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 30
	}

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("clear data: %w", err)
		}
	}

	f := NewFactory(db)

	users := make([]models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		users = append(users, *user)

		// roughly 80% of users have a profile
		if i%5 != 4 {
			if _, err := f.CreateProfile(user); err != nil {
				return fmt.Errorf("create profile: %w", err)
			}
		}
	}
	log.Printf("seeded %d users", len(users))

	for i := 0; i < opts.NumPosts; i++ {
		author := users[i%len(users)]
		post, err := f.CreatePost(&author)
		if err != nil {
			return fmt.Errorf("create post: %w", err)
		}
		if err := f.AddEngagement(post, users); err != nil {
			return fmt.Errorf("add engagement: %w", err)
		}
	}
	log.Printf("seeded %d posts", opts.NumPosts)

	return nil
}

// clearData wipes domain tables, children first.
func clearData(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.Like{},
		&models.Comment{},
		&models.Post{},
		&models.Experience{},
		&models.Education{},
		&models.Profile{},
		&models.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
