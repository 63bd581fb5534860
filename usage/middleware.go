package usage

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Per-client cap on recorded views, so a script hammering one page cannot
// skew popularity.
const (
	recordLimit  = 60
	recordWindow = time.Minute
)

// Middleware records a view for every successful GET whose handler set
// SlugKey on the context. Live-update fragment requests (HX-Request) and
// clients sending DNT: 1 are not recorded. Browsers are only counted once
// they have accepted the consent banner; crawlers never see it and are
// recorded as bot views.
func Middleware(store *Store, logger *zap.Logger) echo.MiddlewareFunc {
	limiter := newRateLimiter(recordLimit, recordWindow)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			req := c.Request()
			if err != nil || req.Method != http.MethodGet || c.Response().Status != http.StatusOK {
				return err
			}
			slug, _ := c.Get(SlugKey).(string)
			if slug == "" || req.Header.Get("HX-Request") == "true" || req.Header.Get("DNT") == "1" {
				return nil
			}
			if !IsBot(req.UserAgent()) && !HasConsent(req) {
				return nil
			}
			ip := c.RealIP()
			if !limiter.allow(ip) {
				return nil
			}
			if rerr := record(c, store, slug, ip); rerr != nil {
				logger.Warn("record usage", zap.String("slug", slug), zap.Error(rerr))
			}
			return nil
		}
	}
}

func record(c echo.Context, store *Store, slug, ip string) error {
	req := c.Request()
	ua := req.UserAgent()
	now := time.Now().UTC()

	if IsBot(ua) {
		return store.SaveBotView(req.Context(), &BotView{
			BotName:   ExtractBotName(ua),
			IPHash:    store.HashIP(ip),
			UserAgent: truncate(ua, maxUserAgentLen),
			Slug:      slug,
			Path:      truncate(req.URL.Path, maxPathLen),
			Timestamp: now,
		})
	}

	browser, os, device := ParseUserAgent(ua)
	return store.SaveView(req.Context(), &View{
		Slug:      slug,
		Path:      truncate(req.URL.Path, maxPathLen),
		VisitorID: store.VisitorID(ip, ua),
		IPHash:    store.HashIP(ip),
		Browser:   browser,
		OS:        os,
		Device:    device,
		Referrer:  CleanReferrer(req.Referer(), req.Host),
		Timestamp: now,
	})
}

const (
	maxPathLen      = 2048
	maxUserAgentLen = 512
)

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
