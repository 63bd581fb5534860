package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/convcalc"
	"github.com/eringen/convcalc/usage"
)

// Layout wraps content in the full HTML document: head metadata, header,
// ad slots, footer and the consent banner.
func (v *Views) Layout(meta convcalc.PageMeta, content templ.Component) templ.Component {
	return component(func(m *markup) {
		m.raw("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
		m.raw(`<meta charset="utf-8">`, "\n")
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`, "\n")
		m.raw("<title>")
		m.text(meta.Title)
		m.raw("</title>\n")
		v.head(m, meta)
		m.raw("</head>\n<body>\n")
		v.header(m)
		m.raw(`<div class="container">`)
		m.render(AdSlot(v.site.AdsEnabled, AdBanner))
		m.raw("</div>\n")
		m.raw(`<main class="container"><div class="layout"><div class="content">`, "\n")
		m.render(content)
		m.render(AdSlot(v.site.AdsEnabled, AdMobile))
		m.raw("</div>\n", `<aside class="sidebar">`)
		m.render(AdSlot(v.site.AdsEnabled, AdSidebar))
		m.raw("</aside>\n</div></main>\n")
		v.footer(m)
		consentBanner(m)
		m.raw("</body>\n</html>\n")
	})
}

func (v *Views) head(m *markup, meta convcalc.PageMeta) {
	metaTag := func(key, name, content string) {
		if content == "" {
			return
		}
		m.raw("<meta")
		m.attr(key, name)
		m.attr("content", content)
		m.raw(">\n")
	}
	metaTag("name", "description", meta.Description)
	metaTag("name", "keywords", JoinTags(meta.Keywords))
	if meta.URL != "" {
		m.raw(`<link rel="canonical"`)
		m.url("href", meta.URL)
		m.raw(">\n")
		metaTag("property", "og:url", meta.URL)
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}
	metaTag("property", "og:title", meta.Title)
	metaTag("property", "og:description", meta.Description)
	metaTag("property", "og:type", ogType)
	metaTag("property", "og:site_name", v.site.Name)
	metaTag("name", "twitter:card", "summary")
	m.raw(`<link rel="icon" href="/favicon.svg" type="image/svg+xml">`, "\n")
	m.raw(`<link rel="alternate" type="application/rss+xml"`)
	m.attr("title", v.site.Name)
	m.raw(` href="/feed.xml">`, "\n")
	m.raw(`<link rel="stylesheet" href="/public/convcalc.css">`, "\n")
	m.raw(`<script src="/public/site.js"></script>`, "\n")
	m.raw(`<script src="/public/converter.js" defer></script>`, "\n")
}

func (v *Views) header(m *markup) {
	m.raw(`<header class="site-header"><div class="container">`, "\n")
	m.raw(`<a class="brand" href="/">`)
	m.text(v.site.Name)
	m.raw("</a>\n", `<nav class="nav" aria-label="Categories">`)
	for _, c := range v.nav {
		m.raw("<a")
		m.attr("href", "/"+c.ID+"/")
		m.raw(">")
		m.text(c.Name)
		m.raw("</a>")
	}
	m.raw(`<a href="/calculators/kitchen/">Kitchen</a><a href="/blog/">Blog</a></nav>`, "\n")
	searchForm(m, "", "e.g. lbs to kg")
	m.raw(`<button id="theme-toggle" class="theme-toggle" type="button" aria-label="Toggle theme" title="Toggle theme"></button>`, "\n")
	m.raw("</div></header>\n")
}

func (v *Views) footer(m *markup) {
	m.raw(`<footer class="site-footer"><div class="container">`, "\n", `<nav aria-label="Footer">`)
	for _, l := range [][2]string{
		{"/about/", "About"},
		{"/contact/", "Contact"},
		{"/privacy/", "Privacy"},
		{"/terms/", "Terms"},
		{"/feed.xml", "RSS"},
		{"/sitemap.xml", "Sitemap"},
	} {
		m.raw(`<a href="`, l[0], `">`, l[1], "</a>")
	}
	m.raw("</nav>\n<p>&copy; ")
	m.text(strconv.Itoa(v.site.Year), " ", v.site.Name)
	m.raw(". Conversions are provided for reference; verify critical values.</p>\n</div></footer>\n")
}

// consentBanner asks before usage is counted. site.js reveals it when the
// consent cookie is missing and stores the answer.
func consentBanner(m *markup) {
	m.raw(`<div id="consent-banner" class="consent-banner" role="dialog" aria-labelledby="consent-title" aria-describedby="consent-text" hidden>`)
	m.raw(`<div class="container"><p id="consent-text"><strong id="consent-title">Cookie preferences.</strong> `)
	m.raw(`We count converter page views to see which tools are useful. No personal data is collected. <a href="/privacy/">Learn more</a></p>`)
	m.raw(`<button type="button" class="secondary" data-consent="`, usage.ConsentDenied, `">Decline</button>`)
	m.raw(`<button type="button" data-consent="`, usage.ConsentGranted, `">Accept</button>`)
	m.raw("</div></div>\n")
}

// searchForm renders the converter search box.
func searchForm(m *markup, query, placeholder string) {
	m.raw(`<form class="search-form" action="/search/" method="get" role="search">`)
	m.raw(`<input type="search" name="q"`)
	if query != "" {
		m.attr("value", query)
	}
	m.attr("placeholder", placeholder)
	m.raw(` aria-label="Search converters"><button type="submit">Search</button></form>`, "\n")
}
