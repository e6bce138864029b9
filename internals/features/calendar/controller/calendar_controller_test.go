package controller

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeedRejectsUnknownType(t *testing.T) {
	app := fiber.New()
	ctrl := NewCalendarController(nil) // rejected before any query runs
	app.Get("/api/calendar/:type", ctrl.GetFeed)

	for _, bad := range []string{"meetings", "EVENTS", "events2"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/calendar/"+bad, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "type %q", bad)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "BAD_REQUEST")
	}
}
