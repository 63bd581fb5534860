package views

import (
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
)

// postPolicy allows the formatting an admin writes in post bodies.
var postPolicy = bluemonday.UGCPolicy()

// SafeHTML sanitises stored post content and renders it unescaped.
func SafeHTML(content string) templ.Component {
	return templ.Raw(postPolicy.Sanitize(content))
}

// PathEscape wraps url.PathEscape for use in component hrefs.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// JoinTags formats a tag slice as a comma-separated string for form fields.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// FormatDate renders a YYYY-MM-DD date as "Jan 2, 2006"; other input is
// returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}

// TagClass returns CSS classes for a tag pill, with active variant.
func TagClass(active bool) string {
	if active {
		return "tag active"
	}
	return "tag"
}

// tagHref links to the blog filtered by tag.
func tagHref(tag string) string {
	return "/blog/?tag=" + url.QueryEscape(tag)
}

// AdSlot kinds.
const (
	AdBanner  = "banner"
	AdSidebar = "sidebar"
	AdMobile  = "mobile"
)

// AdSlot renders a labelled placeholder for an ad unit, or nothing when ads
// are disabled or kind is unknown.
func AdSlot(enabled bool, kind string) templ.Component {
	return component(func(m *markup) {
		if !enabled {
			return
		}
		switch kind {
		case AdBanner, AdSidebar, AdMobile:
			m.raw(`<div class="ad-slot ad-`, kind, `" role="complementary" aria-label="Advertisement">Advertisement</div>`)
		}
	})
}
