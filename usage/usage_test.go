package usage

import (
	"testing"
	"time"
)

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		name                string
		ua                  string
		browser, os, device string
	}{
		{"chrome windows", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36", "Chrome", "Windows", "Desktop"},
		{"edge windows", "Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 Chrome/120.0 Safari/537.36 Edg/120.0", "Edge", "Windows", "Desktop"},
		{"firefox linux", "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0", "Firefox", "Linux", "Desktop"},
		{"safari iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Version/17.0 Mobile/15E148 Safari/604.1", "Safari", "iOS", "Mobile"},
		{"safari ipad", "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Version/17.0 Mobile/15E148 Safari/604.1", "Safari", "iOS", "Tablet"},
		{"chrome android", "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 Chrome/120.0 Mobile Safari/537.36", "Chrome", "Android", "Mobile"},
		{"opera mac", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 Chrome/120.0 Safari/537.36 OPR/105.0", "Opera", "macOS", "Desktop"},
		{"empty", "", "Other", "Other", "Desktop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, o, d := ParseUserAgent(tt.ua)
			if b != tt.browser || o != tt.os || d != tt.device {
				t.Errorf("ParseUserAgent() = (%q, %q, %q), want (%q, %q, %q)", b, o, d, tt.browser, tt.os, tt.device)
			}
		})
	}
}

func TestIsBot(t *testing.T) {
	bots := []string{
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		"Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)",
		"curl/8.4.0",
		"python-requests/2.31.0",
		"",
	}
	for _, ua := range bots {
		if !IsBot(ua) {
			t.Errorf("IsBot(%q) = false, want true", ua)
		}
	}
	humans := []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Safari/604.1",
	}
	for _, ua := range humans {
		if IsBot(ua) {
			t.Errorf("IsBot(%q) = true, want false", ua)
		}
	}
}

func TestExtractBotName(t *testing.T) {
	tests := []struct{ ua, want string }{
		{"Mozilla/5.0 (compatible; Googlebot/2.1)", "Googlebot"},
		{"Mozilla/5.0 (compatible; AhrefsBot/7.0)", "Ahrefs"},
		{"curl/8.4.0", "curl"},
		{"SomeCustomBot/1.0", "Other Bot"},
		{"Mozilla/5.0 (compatible; SiteCrawler/1.0)", "Generic Crawler"},
		{"", "Empty UA"},
		{"Mozilla/5.0 (Windows NT 10.0) Chrome/120.0 Safari", "Unknown"},
	}
	for _, tt := range tests {
		if got := ExtractBotName(tt.ua); got != tt.want {
			t.Errorf("ExtractBotName(%q) = %q, want %q", tt.ua, got, tt.want)
		}
	}
}

func TestCleanReferrer(t *testing.T) {
	tests := []struct {
		ref, host, want string
	}{
		{"", "example.com", "Direct"},
		{"https://www.google.com/search?q=lbs+to+kg", "example.com", "Google"},
		{"https://duckduckgo.com/?q=kg", "example.com", "DuckDuckGo"},
		{"https://news.ycombinator.com/item?id=1", "example.com", "news.ycombinator.com"},
		{"https://www.example.com/weight/", "example.com", "Internal"},
		{"http://localhost:3000/", "localhost:3000", "Internal"},
		{"not a url", "example.com", "Other"},
	}
	for _, tt := range tests {
		if got := CleanReferrer(tt.ref, tt.host); got != tt.want {
			t.Errorf("CleanReferrer(%q, %q) = %q, want %q", tt.ref, tt.host, got, tt.want)
		}
	}
}

func TestHashWithSaltDependsOnSalt(t *testing.T) {
	a := hashWithSalt("salt-a", "203.0.113.1")
	b := hashWithSalt("salt-b", "203.0.113.1")
	if a == b {
		t.Fatalf("expected different hashes for different salts")
	}
	if len(a) != 16 {
		t.Fatalf("hash length = %d, want 16", len(a))
	}
	if a != hashWithSalt("salt-a", "203.0.113.1") {
		t.Fatalf("expected hash to be deterministic")
	}
}

func TestRateLimiterAllow(t *testing.T) {
	rl := newRateLimiter(2, time.Minute)
	if !rl.allow("a") || !rl.allow("a") {
		t.Fatalf("expected first two hits allowed")
	}
	if rl.allow("a") {
		t.Fatalf("expected third hit blocked")
	}
	if !rl.allow("b") {
		t.Fatalf("expected other key allowed")
	}
}
