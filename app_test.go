package convcalc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eringen/convcalc/conversions"
	"github.com/eringen/convcalc/usage"
)

// text renders a fixed string; the stub views below describe their input.
func text(format string, args ...any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	})
}

func stubViews() ViewFuncs {
	return ViewFuncs{
		Home: func(d HomeData) templ.Component {
			return text("home popular=%d categories=%d title=%s", len(d.Popular), len(d.Categories), d.Meta.Title)
		},
		Category: func(d CategoryData) templ.Component {
			return text("category %s %d", d.Category.ID, len(d.Conversions))
		},
		Converter: func(d ConverterData) templ.Component {
			return text("converter %s %s %s->%s result=%s", d.Pair.Slug, d.Direction, d.From.Symbol, d.To.Symbol, d.Result)
		},
		ConverterResult: func(d ConverterData) templ.Component {
			return text("result=%s", d.Result)
		},
		Search: func(d SearchData) templ.Component {
			return text("search %q %d", d.Query, len(d.Results))
		},
		Kitchen: func(d KitchenData) templ.Component {
			return text("kitchen %s cups=%s grams=%s", d.Selected.ID, d.Cups, d.Grams)
		},
		Blog: func(d BlogData) templ.Component {
			return text("blog %d", len(d.Posts))
		},
		Post: func(d PostData) templ.Component {
			return text("post %s", d.Post.Slug)
		},
		Page: func(p StaticPage, meta PageMeta) templ.Component {
			return text("page %s %s", p, meta.Title)
		},
		AdminLogin: func(showError bool, csrf string) templ.Component {
			return text("login error=%t", showError)
		},
		AdminDashboard: func(posts []BlogPost, msg, csrf string) templ.Component {
			return text("dashboard %d %s", len(posts), msg)
		},
		AdminForm: func(post BlogPost, csrf string) templ.Component {
			return text("form %s", post.ID)
		},
		AdminImages: func(images []Image, csrf string) templ.Component {
			return text("images %d", len(images))
		},
		NotFound:    func() templ.Component { return text("not found") },
		ServerError: func() templ.Component { return text("server error") },
	}
}

func newTestApp(t *testing.T, withUsage bool) *App {
	t.Helper()
	dir := t.TempDir()
	a := New(SiteConfig{
		Name:              "Units",
		URL:               "https://units.example",
		DatabasePath:      filepath.Join(dir, "convcalc.db"),
		UsageEnabled:      withUsage,
		UsageDatabasePath: filepath.Join(dir, "usage.db"),
		AdminPassword:     "secret",
		SessionSecret:     "test-session-secret",
	}, stubViews(), WithLogger(zap.NewNop()), WithStaticDir(dir))
	require.NoError(t, a.Init())
	t.Cleanup(func() { a.Close() })
	return a
}

func get(a *App, target string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestInitRequiresSecrets(t *testing.T) {
	a := New(SiteConfig{DatabasePath: filepath.Join(t.TempDir(), "x.db")}, stubViews(), WithLogger(zap.NewNop()))
	assert.ErrorContains(t, a.Init(), "AdminPassword")

	a = New(SiteConfig{AdminPassword: "x"}, stubViews(), WithLogger(zap.NewNop()))
	assert.ErrorContains(t, a.Init(), "SessionSecret")
}

func TestHome(t *testing.T) {
	a := newTestApp(t, false)
	rec := get(a, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "home popular=6 categories=8 title=Units - Quick & Accurate Conversions", rec.Body.String())
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
}

func TestConverterPage(t *testing.T) {
	a := newTestApp(t, false)

	rec := get(a, "/weight/pounds-to-kilograms/?value=10")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "converter pounds-to-kilograms forward lb->kg result=4.5359", rec.Body.String())

	rec = get(a, "/weight/pounds-to-kilograms/")
	assert.Contains(t, rec.Body.String(), "result=0.4536")

	rec = get(a, "/weight/pounds-to-kilograms/?value=10&dir=reverse")
	assert.Equal(t, "converter pounds-to-kilograms reverse kg->lb result=22.0462", rec.Body.String())

	rec = get(a, "/weight/pounds-to-kilograms/?value=abc")
	assert.Equal(t, "converter pounds-to-kilograms forward lb->kg result=", rec.Body.String())

	// Overflow renders as zero instead of failing the page.
	rec = get(a, "/volume/liters-to-milliliters/?value=1e308")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "converter liters-to-milliliters forward L->mL result=0", rec.Body.String())
}

func TestConverterPartial(t *testing.T) {
	a := newTestApp(t, false)
	rec := get(a, "/temperature/fahrenheit-to-celsius/?value=212&partial=result", "HX-Request", "true")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "result=100", rec.Body.String())
}

func TestConverterNotFound(t *testing.T) {
	a := newTestApp(t, false)

	rec := get(a, "/weight/no-such-converter/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", rec.Body.String())

	// Known slug under the wrong category.
	rec = get(a, "/length/pounds-to-kilograms/")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(a, "/nonsense/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTrailingSlashRedirect(t *testing.T) {
	a := newTestApp(t, false)
	rec := get(a, "/weight")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/weight/", rec.Header().Get("Location"))
}

func TestCategoryPage(t *testing.T) {
	a := newTestApp(t, false)
	rec := get(a, "/temperature/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "category temperature 2", rec.Body.String())
}

func TestSearchPage(t *testing.T) {
	a := newTestApp(t, false)

	rec := get(a, "/search/?q=kelvin")
	assert.Equal(t, `search "kelvin" 1`, rec.Body.String())

	rec = get(a, "/search/?q=kelvin&exact=1")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/temperature/celsius-to-kelvin/", rec.Header().Get("Location"))
}

func TestKitchenPage(t *testing.T) {
	a := newTestApp(t, false)

	rec := get(a, "/calculators/kitchen/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cups=1 grams=")

	rec = get(a, "/calculators/kitchen/?grams=abc&cups=2")
	assert.Contains(t, rec.Body.String(), "cups=2 grams=")
}

func TestStaticPages(t *testing.T) {
	a := newTestApp(t, false)
	rec := get(a, "/privacy/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "page privacy Privacy Policy | Units", rec.Body.String())
}

func TestBlogAndPost(t *testing.T) {
	a := newTestApp(t, false)
	_, err := a.Store.SavePost(BlogPost{Slug: "metric-guide", Title: "Metric", Date: "2024-01-01", Published: true})
	require.NoError(t, err)
	a.Cache.Invalidate()

	assert.Equal(t, "blog 1", get(a, "/blog/").Body.String())
	assert.Equal(t, "post metric-guide", get(a, "/blog/metric-guide/").Body.String())
	assert.Equal(t, http.StatusNotFound, get(a, "/blog/missing/").Code)
}

func TestRobots(t *testing.T) {
	a := newTestApp(t, false)
	rec := get(a, "/robots.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User-agent: *\nAllow: /\nDisallow: /admin/\nDisallow: /api/\n\nSitemap: https://units.example/sitemap.xml\n", rec.Body.String())
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
}

func TestSitemapAndFeed(t *testing.T) {
	a := newTestApp(t, false)
	_, err := a.Store.SavePost(BlogPost{Slug: "hello", Title: "Hello", Date: "2024-05-01", Tags: []string{"units"}, Published: true})
	require.NoError(t, err)
	a.Cache.Invalidate()

	rec := get(a, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<?xml"))
	assert.Contains(t, body, "<loc>https://units.example/weight/pounds-to-kilograms/</loc>")
	assert.Contains(t, body, "<loc>https://units.example/calculators/kitchen/</loc>")
	assert.Contains(t, body, "<loc>https://units.example/blog/hello/</loc>")

	rec = get(a, "/feed.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<guid>https://units.example/blog/hello/</guid>")
	assert.Contains(t, rec.Body.String(), "<category>units</category>")
}

func TestHealthAndMetrics(t *testing.T) {
	a := newTestApp(t, false)

	rec := get(a, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	get(a, "/weight/pounds-to-kilograms/?value=3")
	get(a, "/api/convert/feet-to-meters?value=x")

	rec = get(a, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `convcalc_conversions_total{direction="forward",slug="pounds-to-kilograms"} 1`)
	assert.Contains(t, body, `convcalc_api_requests_total{endpoint="convert",outcome="bad_request"} 1`)
	assert.Contains(t, body, "requests_total")
}

func TestEmbeddedAssets(t *testing.T) {
	a := newTestApp(t, false)
	for _, path := range []string{"/public/convcalc.css", "/public/converter.js", "/public/site.js"} {
		rec := get(a, path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "public, max-age=31536000, immutable", rec.Header().Get("Cache-Control"), path)
	}
	assert.Contains(t, get(a, "/public/site.js").Body.String(), "analytics_consent")
}

func TestAdminLoginFlow(t *testing.T) {
	a := newTestApp(t, false)

	rec := get(a, "/admin/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "login error=false", rec.Body.String())
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var csrf *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "_csrf" {
			csrf = ck
		}
	}
	require.NotNil(t, csrf)

	post := func(password string) *httptest.ResponseRecorder {
		form := url.Values{"password": {password}, "_csrf": {csrf.Value}}
		req := httptest.NewRequest(http.MethodPost, "/admin/login/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(csrf)
		rec := httptest.NewRecorder()
		a.Echo.ServeHTTP(rec, req)
		return rec
	}

	rec = post("wrong")
	assert.Equal(t, "login error=true", rec.Body.String())

	rec = post("secret")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
	rec = httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	assert.Equal(t, "dashboard 0 ", rec.Body.String())
}

func TestAdminLoginRejectsMissingCSRF(t *testing.T) {
	a := newTestApp(t, false)
	req := httptest.NewRequest(http.MethodPost, "/admin/login/", strings.NewReader("password=secret"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUsageWiring(t *testing.T) {
	a := newTestApp(t, true)

	for i := 0; i < 3; i++ {
		get(a, "/area/acres-to-hectares/", "User-Agent", "Mozilla/5.0 (X11; Linux x86_64) Firefox/120.0",
			"Cookie", usage.ConsentCookie+"="+usage.ConsentGranted)
	}
	rec := get(a, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	popular := a.popularConversions(a.Echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder()), homePopular)
	require.Len(t, popular, homePopular)
	assert.Equal(t, "acres-to-hectares", popular[0].Slug)

	rec = get(a, "/admin/usage/")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/", rec.Header().Get("Location"))
}

func TestConverterMeta(t *testing.T) {
	p, ok := conversions.BySlug("pounds-to-kilograms")
	require.True(t, ok)
	meta := ConverterMeta(p, SiteConfig{URL: "https://units.example"})
	assert.Equal(t, "Pounds to Kilograms Converter - Free Online Tool", meta.Title)
	assert.Equal(t, "https://units.example/weight/pounds-to-kilograms/", meta.URL)
	assert.LessOrEqual(t, len([]rune(meta.Description)), maxDescriptionLen)
	assert.True(t, strings.HasPrefix(meta.Description, "Convert Pounds to Kilograms instantly."))
	assert.Contains(t, meta.Keywords, "pounds to kilograms")
	assert.Contains(t, meta.Keywords, "lb to kg")
}

func TestAPIConvert(t *testing.T) {
	a := newTestApp(t, false)

	rec := get(a, "/api/convert/pounds-to-kilograms?value=10")
	require.Equal(t, http.StatusOK, rec.Code)
	var res apiConvertResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "pounds-to-kilograms", res.Slug)
	assert.Equal(t, "forward", res.Direction)
	assert.Equal(t, 10.0, res.Input)
	assert.InDelta(t, 4.53592, res.Result, 1e-9)
	assert.Equal(t, "4.5359", res.Formatted)
	assert.Equal(t, "kg", res.To.Symbol)
	assert.Equal(t, "public, max-age=300", rec.Header().Get("Cache-Control"))

	rec = get(a, "/api/convert/pounds-to-kilograms?value=1e999")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"value must be a finite number"}`, rec.Body.String())

	rec = get(a, "/api/convert/liters-to-milliliters?value=1e308")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"result is out of range"}`, rec.Body.String())

	rec = get(a, "/api/convert/nope?value=1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIListings(t *testing.T) {
	a := newTestApp(t, false)

	var pairs []apiPair
	rec := get(a, "/api/conversions?category=temperature")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pairs))
	require.Len(t, pairs, 2)
	assert.Equal(t, "https://units.example/temperature/fahrenheit-to-celsius/", pairs[0].URL)

	assert.Equal(t, http.StatusNotFound, get(a, "/api/conversions?category=nope").Code)

	var detail apiPairDetail
	rec = get(a, "/api/conversions/feet-to-meters")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "feet-to-meters", detail.Slug)
	assert.Len(t, detail.QuickReference, 2)

	rec = get(a, "/api/search?q=mph")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pairs))
	assert.NotEmpty(t, pairs)

	var cats []apiCategory
	rec = get(a, "/api/categories")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cats))
	assert.Len(t, cats, 8)
}

func TestAPIRateLimit(t *testing.T) {
	a := newTestApp(t, false)
	var last int
	for i := 0; i < a.Config.APIBurst+5; i++ {
		last = get(a, "/api/categories").Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}
