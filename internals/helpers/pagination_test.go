package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, query string) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendString("ok")
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/x"+query, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	p := resolveFor(t, "")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)

	p = resolveFor(t, "?page=3&per_page=10")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)

	// limit is an alias for per_page
	p = resolveFor(t, "?limit=5")
	assert.Equal(t, 5, p.PerPage)

	// clamped to max, bad values fall back
	p = resolveFor(t, "?page=-2&per_page=9999")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)
}

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}

	pg := BuildPagination(35, p)
	assert.Equal(t, 4, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	pg = BuildPagination(0, Paging{Page: 1, PerPage: 10})
	assert.Equal(t, 1, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}
