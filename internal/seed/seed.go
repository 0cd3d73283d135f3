// Package seed populates the database with development data.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/gravatar"
	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// SeedPassword is the plaintext password every seeded user gets.
const SeedPassword = "password123"

var statuses = []string{
	"Developer", "Junior Developer", "Senior Developer",
	"Manager", "Student or Learning", "Instructor or Teacher", "Intern",
}

// Seed fills the database with users, profiles, and posts.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users", len(users))

	if err := createProfiles(db, users); err != nil {
		return fmt.Errorf("failed to create profiles: %w", err)
	}

	posts, err := createPosts(db, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	if err := createEngagement(db, users, posts); err != nil {
		return fmt.Errorf("failed to create likes and comments: %w", err)
	}

	log.Println("Seeding complete")
	return nil
}

func clearData(db *gorm.DB) error {
	sql := `TRUNCATE TABLE comments, likes, posts, experiences, educations, profiles, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(db *gorm.DB, n int) ([]models.User, error) {
	// One hash shared across seed users keeps seeding fast.
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		name := gofakeit.Name()
		email := fmt.Sprintf("%s%d@%s",
			strings.ToLower(strings.ReplaceAll(name, " ", ".")), i, gofakeit.DomainName())

		user := models.User{
			Name:     name,
			Email:    email,
			Password: string(hash),
			Avatar:   gravatar.URL(email),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createProfiles(db *gorm.DB, users []models.User) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, u := range users {
		// Roughly a quarter of seeded users have no profile yet.
		if r.Intn(4) == 0 {
			continue
		}

		skills := make([]string, 0, 4)
		for i := 0; i < 2+r.Intn(3); i++ {
			skills = append(skills, gofakeit.ProgrammingLanguage())
		}

		profile := models.Profile{
			UserID:         u.ID,
			Company:        gofakeit.Company(),
			Website:        gofakeit.URL(),
			Location:       gofakeit.City(),
			Bio:            gofakeit.Sentence(12),
			Status:         statuses[r.Intn(len(statuses))],
			GithubUsername: gofakeit.Username(),
			Skills:         service.NormalizeSkills(strings.Join(skills, ",")),
			Social: models.SocialLinks{
				Twitter: "https://twitter.com/" + gofakeit.Username(),
			},
		}
		if err := db.Create(&profile).Error; err != nil {
			return err
		}

		from := gofakeit.DateRange(
			time.Now().AddDate(-8, 0, 0), time.Now().AddDate(-1, 0, 0))
		exp := models.Experience{
			ProfileID:   profile.ID,
			Title:       gofakeit.JobTitle(),
			Company:     gofakeit.Company(),
			Location:    gofakeit.City(),
			From:        from,
			Current:     true,
			Description: gofakeit.Sentence(10),
		}
		if err := db.Create(&exp).Error; err != nil {
			return err
		}
	}
	return nil
}

func createPosts(db *gorm.DB, users []models.User, n int) ([]models.Post, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[r.Intn(len(users))]
		post := models.Post{
			UserID:       author.ID,
			Text:         gofakeit.Paragraph(1, 2, 12, " "),
			AuthorName:   author.Name,
			AuthorAvatar: author.Avatar,
		}
		if err := db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createEngagement(db *gorm.DB, users []models.User, posts []models.Post) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, post := range posts {
		for _, u := range users {
			if r.Intn(5) != 0 || u.ID == post.UserID {
				continue
			}
			like := models.Like{UserID: u.ID, PostID: post.ID}
			if err := db.Create(&like).Error; err != nil {
				return err
			}
		}

		for i := 0; i < r.Intn(4); i++ {
			commenter := users[r.Intn(len(users))]
			comment := models.Comment{
				PostID:       post.ID,
				UserID:       commenter.ID,
				Text:         gofakeit.Sentence(8),
				AuthorName:   commenter.Name,
				AuthorAvatar: commenter.Avatar,
			}
			if err := db.Create(&comment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
