package convcalc

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/convcalc/conversions"
)

const (
	homeFeaturedPosts = 3
	homeRecentPosts   = 5
	homePopular       = 6
)

func (a *App) handleHome(c echo.Context) error {
	cats := conversions.Categories()
	summaries := make([]CategorySummary, 0, len(cats))
	for _, cat := range cats {
		summaries = append(summaries, CategorySummary{
			Category:   cat,
			Converters: conversions.Featured(cat),
		})
	}
	featured, err := a.Cache.Featured(homeFeaturedPosts)
	if err != nil {
		return err
	}
	recent, err := a.Cache.Recent(homeRecentPosts)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(HomeData{
		Meta:       a.pageMeta("", a.Config.Description, "website"),
		Categories: summaries,
		Popular:    a.popularConversions(c, homePopular),
		Featured:   featured,
		Recent:     recent,
	}))
}

// popularConversions returns the most viewed converters over the last 30
// days, padded with registry order when usage data is short or disabled.
func (a *App) popularConversions(c echo.Context, limit int) []conversions.Pair {
	var out []conversions.Pair
	seen := make(map[string]struct{})
	if a.usageStore != nil {
		to := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
		from := to.AddDate(0, 0, -30)
		top, err := a.usageStore.TopSlugs(c.Request().Context(), from, to, limit)
		if err != nil {
			a.Logger.Warn("popular conversions", zap.Error(err))
		}
		for _, sc := range top {
			if p, ok := conversions.BySlug(sc.Slug); ok {
				out = append(out, p)
				seen[p.Slug] = struct{}{}
			}
		}
	}
	for _, p := range conversions.Conversions() {
		if len(out) >= limit {
			break
		}
		if _, ok := seen[p.Slug]; !ok {
			out = append(out, p)
		}
	}
	return out
}

func (a *App) handleBlog(c echo.Context) error {
	tag := c.QueryParam("tag")
	posts, err := a.Cache.ListPosts(tag)
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	featured, err := a.Cache.Featured(homeFeaturedPosts)
	if err != nil {
		return err
	}
	title := "Blog"
	if tag != "" {
		title = "Posts tagged " + tag
	}
	return Render(c, a.Views.Blog(BlogData{
		Meta:      a.pageMeta(title, "Guides and articles about units, measurement and conversions.", "website", "blog"),
		Posts:     posts,
		Featured:  featured,
		Tags:      tags,
		ActiveTag: tag,
	}))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	meta := a.pageMeta(post.Title, post.Summary, "article", "blog", post.Slug)
	meta.Keywords = post.Tags
	return Render(c, a.Views.Post(PostData{
		Meta:    meta,
		Post:    post,
		Related: relatedPosts(post, posts, relatedPostsLimit),
	}))
}

var staticPageTitles = map[StaticPage][2]string{
	PageAbout:   {"About", "About this free online unit converter."},
	PageContact: {"Contact", "Get in touch about the unit converter."},
	PagePrivacy: {"Privacy Policy", "How this site handles your data."},
	PageTerms:   {"Terms of Service", "Terms for using the unit converter."},
}

func (a *App) handleStaticPage(page StaticPage) echo.HandlerFunc {
	info := staticPageTitles[page]
	return func(c echo.Context) error {
		return Render(c, a.Views.Page(page, a.pageMeta(info[0], info[1], "website", string(page))))
	}
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically using the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\nDisallow: /api/\n\nSitemap: %s\n",
		BuildURL(a.Config.URL)+"sitemap.xml")
	return c.String(http.StatusOK, body)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.Error(err),
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
		)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
