// Package seed provides helpers to create demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var statuses = []string{
	"Developer", "Junior Developer", "Senior Developer",
	"Manager", "Student or Learning", "Instructor or Teacher", "Intern",
}

var skillPool = []string{
	"Go", "JavaScript", "TypeScript", "Python", "SQL", "PostgreSQL",
	"Redis", "Docker", "Kubernetes", "React", "HTML", "CSS", "AWS", "Git",
}

// seedPassword is the shared plaintext for every generated account so
// demo logins work.
const seedPassword = "secret1"

// CreateUser persists a user with a hashed demo password.
func (f *Factory) CreateUser() (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	user := &models.User{
		FirstName: first,
		LastName:  last,
		Email: fmt.Sprintf("%s.%s.%d@example.com",
			strings.ToLower(first), strings.ToLower(last), f.rand.Intn(100000)),
		Password: string(hashed),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile persists a profile for the user with a random status,
// skills and a spread of experience and education entries.
func (f *Factory) CreateProfile(user *models.User) (*models.Profile, error) {
	nSkills := 2 + f.rand.Intn(5)
	perm := f.rand.Perm(len(skillPool))
	skills := make([]string, 0, nSkills)
	for _, idx := range perm[:nSkills] {
		skills = append(skills, skillPool[idx])
	}

	profile := &models.Profile{
		UserID:         user.ID,
		Status:         statuses[f.rand.Intn(len(statuses))],
		Skills:         skills,
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Bio:            gofakeit.Sentence(12),
		GithubUsername: gofakeit.Username(),
		Social: models.SocialLinks{
			Twitter:  "https://twitter.com/" + gofakeit.Username(),
			Linkedin: "https://linkedin.com/in/" + gofakeit.Username(),
		},
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}

	for i := 0; i < 1+f.rand.Intn(3); i++ {
		from := f.pastDate(8 * 365)
		exp := &models.Experience{
			ProfileID:   profile.ID,
			Title:       gofakeit.JobTitle(),
			Company:     gofakeit.Company(),
			Location:    gofakeit.City(),
			From:        from,
			Current:     i == 0,
			Description: gofakeit.Sentence(10),
		}
		if !exp.Current {
			to := from.Add(time.Duration(30+f.rand.Intn(700)) * 24 * time.Hour)
			exp.To = &to
		}
		if err := f.db.Create(exp).Error; err != nil {
			return nil, err
		}
	}

	from := f.pastDate(12 * 365)
	to := from.Add(4 * 365 * 24 * time.Hour)
	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       gofakeit.Company() + " University",
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         from,
		To:           &to,
	}
	if err := f.db.Create(edu).Error; err != nil {
		return nil, err
	}

	return profile, nil
}

// CreatePost persists a post with the author's name denormalized and a
// realistic created_at spread over the last 90 days.
func (f *Factory) CreatePost(user *models.User) (*models.Post, error) {
	post := &models.Post{
		Text:      gofakeit.Paragraph(1, 2, 8, " "),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		UserID:    user.ID,
		CreatedAt: f.pastDate(90),
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// AddEngagement sprinkles likes and comments from the given users onto
// the post, honoring the one-like-per-user constraint.
func (f *Factory) AddEngagement(post *models.Post, users []models.User) error {
	for i := range users {
		u := users[i]
		if u.ID == post.UserID {
			continue
		}
		if f.rand.Intn(3) == 0 {
			like := &models.Like{PostID: post.ID, UserID: u.ID}
			if err := f.db.Create(like).Error; err != nil {
				return err
			}
		}
		if f.rand.Intn(4) == 0 {
			comment := &models.Comment{
				PostID:    post.ID,
				UserID:    u.ID,
				Text:      gofakeit.Sentence(8),
				FirstName: u.FirstName,
				LastName:  u.LastName,
			}
			if err := f.db.Create(comment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *Factory) pastDate(maxDaysBack int) time.Time {
	days := f.rand.Intn(maxDaysBack)
	hours := f.rand.Intn(24)
	return time.Now().Add(-time.Duration(days)*24*time.Hour - time.Duration(hours)*time.Hour)
}
