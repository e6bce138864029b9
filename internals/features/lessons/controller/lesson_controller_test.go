package controller

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"studioe_backend/internals/constants"
)

// lessonApp mounts GetLesson behind an optional locals shim standing in for
// the auth middleware.
func lessonApp(db *gorm.DB, userID, role string) *fiber.App {
	app := fiber.New()
	if userID != "" {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("user_id", userID)
			c.Locals("user_role", role)
			return c.Next()
		})
	}
	ctrl := &LessonController{DB: db}
	app.Get("/api/lessons/:id", ctrl.GetLesson)
	return app
}

func TestGetLessonWithoutCallerIsUnauthorized(t *testing.T) {
	app := lessonApp(nil, "", "")

	req := httptest.NewRequest("GET", "/api/lessons/0d9a7a66-3c41-4f7e-9a93-5f2f9f3f1a20", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Unauthorized")
	assert.NotContains(t, string(body), "Lesson not found")
}

func TestGetLessonBadIDIsNotFound(t *testing.T) {
	app := lessonApp(nil, "7f6d9f0a-07e4-4b43-9c41-0a8f7a8281a0", constants.RoleAdmin)

	req := httptest.NewRequest("GET", "/api/lessons/not-a-uuid", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Lesson not found")
}

func TestGetLessonQueryFailureIsServerError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM "lessons"`).
		WillReturnError(errors.New("connection reset by peer"))

	app := lessonApp(db, "7f6d9f0a-07e4-4b43-9c41-0a8f7a8281a0", constants.RoleAdmin)
	req := httptest.NewRequest("GET", "/api/lessons/0d9a7a66-3c41-4f7e-9a93-5f2f9f3f1a20", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Failed to load lesson")
	assert.NotContains(t, string(body), "Lesson not found")
	require.NoError(t, mock.ExpectationsWereMet())
}
