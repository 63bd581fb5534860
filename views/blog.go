package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/convcalc"
)

func tagList(m *markup, tags []string) {
	if len(tags) == 0 {
		return
	}
	m.raw(`<ul class="tags">`)
	for _, t := range tags {
		m.raw(`<li><a class="tag"`)
		m.attr("href", tagHref(t))
		m.raw(">")
		m.text(t)
		m.raw("</a></li>")
	}
	m.raw("</ul>\n")
}

func byline(m *markup, p convcalc.BlogPost) {
	m.raw(`<p class="reference">`)
	m.text(FormatDate(p.Date))
	if p.Author != "" {
		m.raw(" &middot; ")
		m.text(p.Author)
	}
	m.raw("</p>\n")
}

func postCard(m *markup, p convcalc.BlogPost) {
	m.raw(`<article class="card"><h3><a`)
	m.url("href", p.Link)
	m.raw(">")
	m.text(p.Title)
	m.raw("</a></h3>\n")
	byline(m, p)
	if p.Summary != "" {
		m.raw("<p>")
		m.text(p.Summary)
		m.raw("</p>\n")
	}
	tagList(m, p.Tags)
	m.raw("</article>\n")
}

func postGrid(m *markup, posts []convcalc.BlogPost) {
	m.raw(`<div class="grid">`)
	for _, p := range posts {
		postCard(m, p)
	}
	m.raw("</div>\n")
}

// BlogPage lists published posts with the tag filter.
func BlogPage(d convcalc.BlogData) templ.Component {
	return component(func(m *markup) {
		m.raw("<h1>")
		if d.ActiveTag != "" {
			m.raw("Posts tagged &ldquo;")
			m.text(d.ActiveTag)
			m.raw("&rdquo;")
		} else {
			m.raw("Blog")
		}
		m.raw("</h1>\n")

		if len(d.Tags) > 0 {
			m.raw(`<ul class="tags"><li><a`)
			m.attr("class", TagClass(d.ActiveTag == ""))
			m.raw(` href="/blog/">All</a></li>`)
			for _, t := range d.Tags {
				m.raw("<li><a")
				m.attr("class", TagClass(d.ActiveTag == t))
				m.attr("href", tagHref(t))
				m.raw(">")
				m.text(t)
				m.raw("</a></li>")
			}
			m.raw("</ul>\n")
		}

		if len(d.Featured) > 0 && d.ActiveTag == "" {
			m.raw("<section>\n<h2>Featured</h2>\n")
			postGrid(m, d.Featured)
			m.raw("</section>\n")
		}

		m.raw("<section>\n")
		if len(d.Posts) == 0 {
			m.raw("<p>No posts yet.</p>\n")
		}
		for _, p := range d.Posts {
			postCard(m, p)
		}
		m.raw("</section>\n")
	})
}

// PostPage renders one article. The body is sanitised before output.
func PostPage(d convcalc.PostData) templ.Component {
	return component(func(m *markup) {
		p := d.Post
		m.raw(`<article class="post">`, "\n")
		breadcrumbs(m, [][2]string{{"/", "Home"}, {"/blog/", "Blog"}}, p.Title)
		m.raw("<h1>")
		m.text(p.Title)
		m.raw("</h1>\n")
		byline(m, p)
		if p.CoverImage != "" {
			m.raw(`<img class="cover"`)
			m.url("src", p.CoverImage)
			m.raw(` alt="">`, "\n")
		}
		tagList(m, p.Tags)
		m.raw(`<div class="post-body">`)
		m.render(SafeHTML(p.Content))
		m.raw("</div>\n</article>\n")

		if len(d.Related) > 0 {
			m.raw("<section>\n<h2>Related posts</h2>\n")
			postGrid(m, d.Related)
			m.raw("</section>\n")
		}
	})
}

// InfoPage renders the about, contact, privacy and terms pages.
func InfoPage(siteName string, page convcalc.StaticPage) templ.Component {
	return component(func(m *markup) {
		switch page {
		case convcalc.PageAbout:
			m.raw("<h1>About</h1>\n<p>")
			m.text(siteName)
			m.raw(" offers fast, accurate conversions between common units of weight, length, temperature, volume, data size, time, area and speed.</p>\n")
			m.raw("<p>Every converter shows the formula it uses, a quick reference, and related conversions so you can check results at a glance.</p>\n")
		case convcalc.PageContact:
			m.raw("<h1>Contact</h1>\n")
			m.raw("<p>Found a wrong value or want a new converter? Reach out and we will take a look.</p>\n")
		case convcalc.PagePrivacy:
			m.raw("<h1>Privacy Policy</h1>\n")
			m.raw("<p>Converter page views are counted only after you accept the cookie banner. Your answer is kept in a single cookie; declining means nothing is counted. Browsers that send Do Not Track are never counted.</p>\n")
			m.raw("<p>Counted views are aggregated. IP addresses are hashed with a private salt and never stored in the clear.</p>\n")
			m.raw("<p>Your light or dark theme choice stays in your browser. Admin sessions use one strictly necessary cookie.</p>\n")
		case convcalc.PageTerms:
			m.raw("<h1>Terms of Service</h1>\n")
			m.raw("<p>Conversions are provided as-is for general reference. Verify values before relying on them for medical, engineering or legal purposes.</p>\n")
		}
	})
}
