package controller

import (
	"encoding/xml"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studioe_backend/internals/constants"
	"studioe_backend/internals/features/content/model"
	helper "studioe_backend/internals/helpers"
)

type SitemapController struct {
	DB      *gorm.DB
	BaseURL string
}

func NewSitemapController(db *gorm.DB, baseURL string) *SitemapController {
	return &SitemapController{DB: db, BaseURL: baseURL}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// GET /api/sitemap: static marketing routes plus one URL per published post.
func (ctrl *SitemapController) GetSitemap(c *fiber.Ctx) error {
	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, route := range constants.StaticSitemapRoutes {
		priority := "0.8"
		if route == "/" {
			priority = "1.0"
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        ctrl.BaseURL + route,
			ChangeFreq: "weekly",
			Priority:   priority,
		})
	}

	var posts []model.BlogPostModel
	if err := ctrl.DB.
		Select("blog_post_slug", "blog_post_updated_at").
		Where("blog_post_is_published = ?", true).
		Order("blog_post_published_at DESC").
		Find(&posts).Error; err != nil {
		log.Printf("[ERROR] sitemap posts: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build sitemap")
	}
	for _, p := range posts {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        ctrl.BaseURL + "/blog/" + p.BlogPostSlug,
			LastMod:    p.BlogPostUpdatedAt.Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		log.Printf("[ERROR] sitemap marshal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build sitemap")
	}

	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.SendString(xml.Header + string(body))
}
