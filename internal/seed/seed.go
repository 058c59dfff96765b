// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"pulse/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// groupTitles stay fixed so reruns hit the same slugs instead of piling up
// random communities.
var groupTitles = []string{
	"General", "Movies", "Music", "Gaming", "Technology",
	"Books", "Food", "Travel", "Programming", "Science",
}

// Run seeds the database with groups, users, posts, comments and follows.
func Run(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())

	if opts.NumUsers <= 0 {
		opts.NumUsers = 12
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 50
	}

	if opts.ShouldClean {
		log.Println("Cleaning existing data...")
		if err := db.Exec("TRUNCATE TABLE follows, comments, posts, groups, users RESTART IDENTITY CASCADE").Error; err != nil {
			return fmt.Errorf("clean failed: %w", err)
		}
	}

	groups, err := seedGroups(db)
	if err != nil {
		return err
	}
	users, err := seedUsers(db, opts.NumUsers)
	if err != nil {
		return err
	}
	posts, err := seedPosts(db, users, groups, opts.NumPosts)
	if err != nil {
		return err
	}
	if err := seedComments(db, users, posts); err != nil {
		return err
	}
	if err := seedFollows(db, users); err != nil {
		return err
	}

	log.Printf("Seeded %d groups, %d users, %d posts", len(groups), len(users), len(posts))
	return nil
}

func seedGroups(db *gorm.DB) ([]models.Group, error) {
	groups := make([]models.Group, 0, len(groupTitles))
	for _, title := range groupTitles {
		group := models.Group{
			Title:       title,
			Slug:        strings.ToLower(title),
			Description: gofakeit.Sentence(10),
		}
		if err := db.Where("slug = ?", group.Slug).FirstOrCreate(&group).Error; err != nil {
			return nil, fmt.Errorf("seed group %q: %w", title, err)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func seedUsers(db *gorm.DB, n int) ([]models.User, error) {
	// One shared hash keeps seeding fast; every seeded account logs in
	// with "password123".
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		name := strings.ToLower(gofakeit.Username())
		user := models.User{
			Username: name,
			Email:    gofakeit.Email(),
			Password: string(hashed),
			Bio:      gofakeit.Sentence(8),
		}
		if err := db.Where("username = ?", user.Username).FirstOrCreate(&user).Error; err != nil {
			return nil, fmt.Errorf("seed user %q: %w", name, err)
		}
		users = append(users, user)
	}
	return users, nil
}

func seedPosts(db *gorm.DB, users []models.User, groups []models.Group, n int) ([]models.Post, error) {
	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[rand.Intn(len(users))]
		post := models.Post{
			Text:     gofakeit.Paragraph(1, gofakeit.Number(1, 3), gofakeit.Number(5, 15), " "),
			AuthorID: &author.ID,
			// spread creation times over the last 90 days so feeds look lived-in
			CreatedAt: time.Now().Add(-time.Duration(rand.Intn(90*24)) * time.Hour),
		}
		// Roughly a third of posts stay groupless
		if rand.Intn(3) != 0 {
			group := groups[rand.Intn(len(groups))]
			post.GroupID = &group.ID
		}
		if err := db.Create(&post).Error; err != nil {
			return nil, fmt.Errorf("seed post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func seedComments(db *gorm.DB, users []models.User, posts []models.Post) error {
	for i := range posts {
		for j := 0; j < rand.Intn(4); j++ {
			author := users[rand.Intn(len(users))]
			comment := models.Comment{
				Text:     gofakeit.Sentence(gofakeit.Number(4, 12)),
				PostID:   &posts[i].ID,
				AuthorID: author.ID,
			}
			if err := db.Create(&comment).Error; err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}
	}
	return nil
}

func seedFollows(db *gorm.DB, users []models.User) error {
	for i := range users {
		for j := range users {
			if i == j || rand.Intn(4) != 0 {
				continue
			}
			follow := models.Follow{UserID: users[i].ID, AuthorID: users[j].ID}
			if err := db.Where("user_id = ? AND author_id = ?", follow.UserID, follow.AuthorID).
				FirstOrCreate(&follow).Error; err != nil {
				return fmt.Errorf("seed follow: %w", err)
			}
		}
	}
	return nil
}
