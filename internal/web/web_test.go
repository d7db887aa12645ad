package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupWebApp(t *testing.T) (*gorm.DB, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Experience{},
		&models.Education{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	))

	profileSvc := service.NewProfileService(repository.NewProfileRepository(db), nil)
	postSvc := service.NewPostService(repository.NewPostRepository(db), repository.NewUserRepository(db))

	h, err := NewHandler(profileSvc, postSvc)
	require.NoError(t, err)

	app := fiber.New()
	h.Register(app)
	return db, app
}

func getPage(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp.StatusCode, string(body)
}

func TestLandingPage(t *testing.T) {
	_, app := setupWebApp(t)

	status, body := getPage(t, app, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "DevConnect")
	assert.Contains(t, body, "/developers")
}

func TestDevelopersPage(t *testing.T) {
	db, app := setupWebApp(t)

	status, body := getPage(t, app, "/developers")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "No profiles yet")

	user := models.User{FirstName: "Ann", LastName: "Lee", Email: "a@x.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Profile{
		UserID: user.ID, Status: "Developer", Skills: []string{"Go"},
	}).Error)

	status, body = getPage(t, app, "/developers")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Ann Lee")
	assert.Contains(t, body, "Developer")
}

func TestFeedPage(t *testing.T) {
	db, app := setupWebApp(t)

	user := models.User{FirstName: "Ann", LastName: "Lee", Email: "a@x.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Post{
		Text: "hello from the feed", FirstName: "Ann", LastName: "Lee", UserID: user.ID,
	}).Error)

	status, body := getPage(t, app, "/feed")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "hello from the feed")
	assert.Contains(t, body, "0 likes")
}

func TestFeedPageEscapesUserContent(t *testing.T) {
	db, app := setupWebApp(t)

	user := models.User{FirstName: "Ann", LastName: "Lee", Email: "a@x.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Post{
		Text: "<script>alert(1)</script>", FirstName: "Ann", LastName: "Lee", UserID: user.ID,
	}).Error)

	status, body := getPage(t, app, "/feed")
	assert.Equal(t, http.StatusOK, status)
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}
