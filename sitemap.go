package convcalc

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/convcalc/conversions"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// buildSitemap lists the home page, the informational pages, every category
// and converter, the kitchen calculator, and published posts.
func (a *App) buildSitemap(posts []BlogPost) sitemapURLSet {
	base := a.Config.URL
	today := time.Now().UTC().Format("2006-01-02")
	urls := []sitemapURL{
		{Loc: BuildURL(base), LastMod: today, ChangeFreq: "weekly", Priority: "1.0"},
		{Loc: BuildURL(base, string(PageAbout)), LastMod: today, ChangeFreq: "monthly", Priority: "0.5"},
		{Loc: BuildURL(base, string(PageContact)), LastMod: today, ChangeFreq: "monthly", Priority: "0.3"},
		{Loc: BuildURL(base, string(PagePrivacy)), LastMod: today, ChangeFreq: "yearly", Priority: "0.2"},
		{Loc: BuildURL(base, string(PageTerms)), LastMod: today, ChangeFreq: "yearly", Priority: "0.2"},
	}
	for _, cat := range conversions.Categories() {
		urls = append(urls, sitemapURL{
			Loc:        BuildURL(base, cat.ID),
			LastMod:    today,
			ChangeFreq: "monthly",
			Priority:   "0.8",
		})
	}
	for _, p := range conversions.Conversions() {
		urls = append(urls, sitemapURL{
			Loc:        BuildURL(base, p.Category, p.Slug),
			LastMod:    today,
			ChangeFreq: "monthly",
			Priority:   "0.9",
		})
	}
	urls = append(urls, sitemapURL{
		Loc:        BuildURL(base, "calculators", "kitchen"),
		LastMod:    today,
		ChangeFreq: "monthly",
		Priority:   "0.7",
	})
	if len(posts) > 0 {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, "blog"), LastMod: posts[0].Date, ChangeFreq: "weekly", Priority: "0.6"})
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:        BuildURL(base, "blog", p.Slug),
			LastMod:    p.Date,
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}
	return sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
}

func (a *App) renderSitemap(c echo.Context, posts []BlogPost) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(a.buildSitemap(posts))
}
