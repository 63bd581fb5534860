// Package usage records privacy-friendly converter page views and serves
// aggregated statistics to the admin.
//
// Views are recorded server-side: no cookies, no client script. IP addresses
// are only stored as salted, truncated SHA-256 hashes.
package usage

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// SlugKey is the echo.Context key under which a handler stores the slug of
// the converter it rendered. The middleware only records requests that set it.
const SlugKey = "usage.slug"

// InitSalt loads the persistent salt used for hashing, generating and storing
// one on first run.
func InitSalt(store *Store) error {
	s, err := store.GetSetting(saltSetting)
	if err != nil {
		return fmt.Errorf("read hash salt: %w", err)
	}
	if s == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return fmt.Errorf("generate salt: %w", err)
		}
		s = hex.EncodeToString(b)
		if err := store.SetSetting(saltSetting, s); err != nil {
			return fmt.Errorf("store hash salt: %w", err)
		}
	}
	store.salt = s
	return nil
}

const saltSetting = "hash_salt"

// View is a single human converter page view.
type View struct {
	ID        int64     `json:"-"`
	Slug      string    `json:"slug"`
	Path      string    `json:"path"`
	VisitorID string    `json:"visitor_id"`
	IPHash    string    `json:"-"`
	Browser   string    `json:"browser"`
	OS        string    `json:"os"`
	Device    string    `json:"device"`
	Referrer  string    `json:"referrer"`
	Timestamp time.Time `json:"timestamp"`
}

// BotView is a converter page fetched by a crawler.
type BotView struct {
	ID        int64     `json:"-"`
	BotName   string    `json:"bot_name"`
	IPHash    string    `json:"-"`
	UserAgent string    `json:"user_agent"`
	Slug      string    `json:"slug"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// SlugCount is the number of views of one converter.
type SlugCount struct {
	Slug  string `json:"slug"`
	Views int    `json:"views"`
}

// DailyCount is the number of views on one UTC day (YYYY-MM-DD).
type DailyCount struct {
	Date  string `json:"date"`
	Views int    `json:"views"`
}

// DimensionStat is one row of a browser/OS/device/referrer breakdown.
type DimensionStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary aggregates views over a time range.
type Summary struct {
	Period         string          `json:"period"`
	TotalViews     int             `json:"total_views"`
	UniqueVisitors int             `json:"unique_visitors"`
	BotViews       int             `json:"bot_views"`
	Browsers       []DimensionStat `json:"browsers"`
	OS             []DimensionStat `json:"os"`
	Devices        []DimensionStat `json:"devices"`
	Referrers      []DimensionStat `json:"referrers"`
	TopBots        []DimensionStat `json:"top_bots"`
}

func hashWithSalt(salt string, parts ...string) string {
	h := sha256.New()
	h.Write([]byte(salt + strings.Join(parts, "|")))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// ParseUserAgent extracts browser, OS, and device from User-Agent string.
func ParseUserAgent(ua string) (browser, os, device string) {
	ua = strings.ToLower(ua)

	// More specific browsers first: Edge and Opera UAs also contain "chrome".
	switch {
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "opera") || strings.Contains(ua, "opr/"):
		browser = "Opera"
	case strings.Contains(ua, "edg"):
		browser = "Edge"
	case strings.Contains(ua, "chrome"):
		browser = "Chrome"
	case strings.Contains(ua, "safari"):
		browser = "Safari"
	default:
		browser = "Other"
	}

	// Android before Linux.
	switch {
	case strings.Contains(ua, "windows"):
		os = "Windows"
	case strings.Contains(ua, "android"):
		os = "Android"
	case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad"):
		os = "iOS"
	case strings.Contains(ua, "macintosh") || strings.Contains(ua, "mac os"):
		os = "macOS"
	case strings.Contains(ua, "linux"):
		os = "Linux"
	default:
		os = "Other"
	}

	// iPad UAs contain "mobile".
	switch {
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		device = "Tablet"
	case strings.Contains(ua, "mobile"):
		device = "Mobile"
	default:
		device = "Desktop"
	}

	return
}

var botMarkers = []string{
	"bot", "crawler", "spider", "crawl", "slurp", "scrape",
	"googlebot", "bingbot", "yandex", "baidu", "duckduckbot",
	"facebookexternalhit", "twitterbot", "linkedinbot",
	"ahrefsbot", "semrushbot", "mj12bot", "dotbot",
	"curl/", "wget/", "python-requests", "go-http-client",
}

// IsBot reports whether the User-Agent looks like a crawler or script.
// An empty User-Agent counts as a bot.
func IsBot(ua string) bool {
	ua = strings.ToLower(ua)
	if strings.TrimSpace(ua) == "" {
		return true
	}
	for _, m := range botMarkers {
		if strings.Contains(ua, m) {
			return true
		}
	}
	return false
}

// botNames is checked in order; specific crawlers before generic markers.
var botNames = []struct{ pattern, name string }{
	{"googlebot", "Googlebot"},
	{"bingbot", "Bingbot"},
	{"yandex", "Yandex"},
	{"baidu", "Baidu"},
	{"duckduckbot", "DuckDuckBot"},
	{"facebookexternalhit", "Facebook"},
	{"twitterbot", "Twitterbot"},
	{"linkedinbot", "LinkedIn"},
	{"ahrefsbot", "Ahrefs"},
	{"semrushbot", "SEMrush"},
	{"mj12bot", "Majestic"},
	{"dotbot", "Moz"},
	{"slurp", "Yahoo Slurp"},
	{"curl/", "curl"},
	{"wget/", "Wget"},
	{"python-requests", "python-requests"},
	{"go-http-client", "Go HTTP client"},
	{"crawler", "Generic Crawler"},
	{"spider", "Generic Spider"},
}

// ExtractBotName extracts the bot name from User-Agent string.
func ExtractBotName(ua string) string {
	ua = strings.ToLower(ua)
	if strings.TrimSpace(ua) == "" {
		return "Empty UA"
	}
	for _, b := range botNames {
		if strings.Contains(ua, b.pattern) {
			return b.name
		}
	}
	if strings.Contains(ua, "bot") {
		return "Other Bot"
	}
	return "Unknown"
}

var referrerDomainRegex = regexp.MustCompile(`^https?://(?:www\.)?([^/:]+)`)

// CleanReferrer reduces a referrer URL to a source name or bare domain.
// Referrers from selfHost count as internal navigation.
func CleanReferrer(ref, selfHost string) string {
	if ref == "" {
		return "Direct"
	}

	refLower := strings.ToLower(ref)
	switch {
	case strings.Contains(refLower, "google."):
		return "Google"
	case strings.Contains(refLower, "bing."):
		return "Bing"
	case strings.Contains(refLower, "duckduckgo."):
		return "DuckDuckGo"
	case strings.Contains(refLower, "yahoo."):
		return "Yahoo"
	}

	matches := referrerDomainRegex.FindStringSubmatch(refLower)
	if len(matches) > 1 {
		host := strings.TrimPrefix(strings.ToLower(selfHost), "www.")
		if i := strings.IndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
		if host != "" && matches[1] == host {
			return "Internal"
		}
		return matches[1]
	}
	return "Other"
}
