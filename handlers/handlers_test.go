package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	config "github.com/gekoeducation/geko-api/configs"
	"github.com/gekoeducation/geko-api/database"
	"github.com/gekoeducation/geko-api/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// stubSender stands in for the SMTP transport in tests.
type stubSender struct {
	Sent []sentMail
	Fail error
}

func (s *stubSender) Send(to, subject, body string) error {
	if s.Fail != nil {
		return s.Fail
	}
	s.Sent = append(s.Sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

// newTestApp swaps in an in-memory database and returns an app with every
// handler mounted directly, without the auth middleware: these tests cover
// handler behavior, not route guarding.
func newTestApp(t *testing.T) (*fiber.App, *stubSender) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Language{},
		&models.Category{},
		&models.CategoryTranslation{},
		&models.PopularCourse{},
		&models.PopularCourseTranslation{},
		&models.Event{},
		&models.EventTranslation{},
		&models.EventGallery{},
		&models.Team{},
		&models.TeamTranslation{},
		&models.LessonInfo{},
		&models.LessonInfoTranslation{},
		&models.Review{},
		&models.ContactMessage{},
	))
	database.DB = db

	sender := &stubSender{}
	Setup(&config.Config{
		ContactRecipient: "gekoeducation@gmail.com",
		JWTSecret:        "test-secret",
	}, sender)

	app := fiber.New()

	app.Get("/api/categories", ListCategories)
	app.Get("/api/categories/:id", GetCategory)
	app.Post("/api/categories", CreateCategory)
	app.Put("/api/categories/:id", UpdateCategory)
	app.Delete("/api/categories/:id", DeleteCategory)
	app.Post("/api/update-order", UpdateOrderFor(&models.Category{}, "category"))

	app.Get("/api/popular_courses", ListPopularCourses)
	app.Get("/api/popular_courses/:id", GetPopularCourse)
	app.Get("/api/courses/:categoryId", CoursesByCategory)
	app.Post("/api/popular_courses", CreatePopularCourse)

	app.Get("/api/events", ListEvents)
	app.Get("/api/events/:id", GetEvent)
	app.Post("/api/events", CreateEvent)

	app.Get("/api/teams", ListTeams)
	app.Get("/api/lesson_info", ListLessonInfo)
	app.Get("/api/reviews", ListReviews)

	app.Get("/api/languages", ListLanguages)
	app.Post("/api/languages", CreateLanguage)
	app.Delete("/api/languages/:id", DeleteLanguage)

	app.Post("/api/contact", SubmitContactForm)
	app.Get("/api/admin/contact-messages", ListContactMessages)

	return app, sender
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func seedLanguage(t *testing.T, code, name string) models.Language {
	t.Helper()
	l := models.Language{Code: code, Name: name}
	require.NoError(t, database.DB.Create(&l).Error)
	return l
}

func seedCategory(t *testing.T, order int, texts map[string]string) models.Category {
	t.Helper()

	c := models.Category{Order: order}
	require.NoError(t, database.DB.Create(&c).Error)

	for code, text := range texts {
		var lang models.Language
		err := database.DB.Where("code = ?", code).First(&lang).Error
		require.NoError(t, err)
		tr := models.CategoryTranslation{CategoryID: c.ID, LanguageID: lang.ID, Text: text}
		require.NoError(t, database.DB.Create(&tr).Error)
	}
	return c
}
