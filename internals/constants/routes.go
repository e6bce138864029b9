package constants

// StaticSitemapRoutes lists the marketing pages included in the sitemap in
// addition to one URL per published blog post.
var StaticSitemapRoutes = []string{
	"/",
	"/about",
	"/instructors",
	"/classes",
	"/events",
	"/blog",
	"/contact",
	"/private-lessons",
	"/wedding-dance",
}
