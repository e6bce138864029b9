package controller

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioe_backend/internals/constants"
)

func TestSitemapMarshalShape(t *testing.T) {
	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	base := "https://www.joinstudioe.com"
	for _, route := range constants.StaticSitemapRoutes {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + route, ChangeFreq: "weekly", Priority: "0.8"})
	}
	set.URLs = append(set.URLs, sitemapURL{Loc: base + "/blog/first-post", LastMod: "2025-05-01", Priority: "0.6"})

	body, err := xml.MarshalIndent(set, "", "  ")
	require.NoError(t, err)
	out := string(body)

	assert.True(t, strings.HasPrefix(out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`))
	for _, route := range constants.StaticSitemapRoutes {
		assert.Contains(t, out, "<loc>"+base+route+"</loc>")
	}
	assert.Contains(t, out, "<loc>"+base+"/blog/first-post</loc>")
	assert.Contains(t, out, "<lastmod>2025-05-01</lastmod>")
}

func TestStaticSitemapRoutesIncludeCorePages(t *testing.T) {
	assert.Contains(t, constants.StaticSitemapRoutes, "/")
	assert.Contains(t, constants.StaticSitemapRoutes, "/blog")
	assert.Contains(t, constants.StaticSitemapRoutes, "/classes")
}
