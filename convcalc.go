// Package convcalc is a unit-conversion website built with Go, Echo, and templ.
// It serves converter pages backed by the conversions registry, a small
// SQLite blog with an admin dashboard, a JSON API, sitemap, RSS, and
// privacy-friendly usage statistics.
//
// Templates are supplied through the ViewFuncs struct; convcalc owns the
// handlers, middleware, and storage.
package convcalc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/convcalc/usage"
)

// ViewFuncs holds the templ components the framework calls when rendering
// pages. Users own and customise every template.
type ViewFuncs struct {
	Home            func(data HomeData) templ.Component
	Category        func(data CategoryData) templ.Component
	Converter       func(data ConverterData) templ.Component
	ConverterResult func(data ConverterData) templ.Component
	Search          func(data SearchData) templ.Component
	Kitchen         func(data KitchenData) templ.Component
	Blog            func(data BlogData) templ.Component
	Post            func(data PostData) templ.Component
	Page            func(page StaticPage, meta PageMeta) templ.Component
	AdminLogin      func(showError bool, csrfToken string) templ.Component
	AdminDashboard  func(posts []BlogPost, message string, csrfToken string) templ.Component
	AdminForm       func(post BlogPost, csrfToken string) templ.Component
	AdminImages     func(images []Image, csrfToken string) templ.Component
	NotFound        func() templ.Component
	ServerError     func() templ.Component
}

// App is the central convcalc application. It wires together the store,
// cache, handlers, middleware, metrics, and user-provided templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *Store
	Cache   *PostCache
	Views   ViewFuncs
	Logger  *zap.Logger
	Metrics *Metrics

	loginLimiter *LoginLimiter
	usageStore   *usage.Store
	stopCleanup  func()
	customRoutes []func(*App)
	staticDir    string
}

// New creates a new convcalc App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init opens the databases and registers middleware and routes without
// starting the listener. Start calls it; tests call it directly.
func (a *App) Init() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("convcalc: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("convcalc: SessionSecret is required")
	}

	if a.Logger == nil {
		logger, err := NewLogger(a.Config.LogLevel, a.Config.LogDevelopment)
		if err != nil {
			return fmt.Errorf("convcalc: init logger: %w", err)
		}
		a.Logger = logger
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("convcalc: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewPostCache(a.Store, a.Config.PostCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)
	a.Metrics = NewMetrics()

	if a.Config.UsageEnabled {
		usageStore, err := usage.NewStore(a.Config.UsageDatabasePath)
		if err != nil {
			return fmt.Errorf("convcalc: init usage: %w", err)
		}
		a.usageStore = usageStore
		if err := usage.InitSalt(usageStore); err != nil {
			return fmt.Errorf("convcalc: init usage salt: %w", err)
		}
		a.stopCleanup = usageStore.StartCleanupScheduler(a.Config.UsageRetentionDays, 24*time.Hour, a.Logger)
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and serves HTTP until the server is shut down.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Logger.Info("listening", zap.String("addr", a.Config.Addr), zap.String("url", a.Config.URL))
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully and releases resources.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if cerr := a.Close(); err == nil {
		err = cerr
	}
	return err
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded framework assets, then the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(embeddedFS))))
	e.GET("/public/convcalc.css", embeddedHandler)
	e.GET("/public/converter.js", embeddedHandler)
	e.GET("/public/site.js", embeddedHandler)
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Ops
	e.GET("/healthz", handleHealth)
	e.GET("/metrics", a.Metrics.Handler())

	// Public pages
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/search/", a.handleSearch)
	e.GET("/calculators/kitchen/", a.handleKitchen)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/:slug/", a.handlePost)
	for _, page := range []StaticPage{PageAbout, PageContact, PagePrivacy, PageTerms} {
		e.GET("/"+string(page)+"/", a.handleStaticPage(page))
	}
	e.GET("/:category/", a.handleCategory)
	e.GET("/:category/:slug/", a.handleConverter)

	// JSON API
	api := e.Group("/api", a.apiRateLimiter())
	api.GET("/conversions", a.handleAPIConversions)
	api.GET("/conversions/:slug", a.handleAPIConversion)
	api.GET("/convert/:slug", a.handleAPIConvert)
	api.GET("/search", a.handleAPISearch)
	api.GET("/categories", a.handleAPICategories)

	// Admin
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/post/:id/", a.handleAdminPost)
	e.POST("/admin/save/", a.handleAdminSave)
	e.DELETE("/admin/post/:id/", a.handleAdminDelete)
	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.DELETE("/admin/images/:filename/", a.handleImageDelete)

	if a.usageStore != nil {
		usageHandler := usage.NewHandler(a.usageStore, a.Logger)
		usageHandler.RegisterRoutes(e.Group("/admin/usage", a.requireAdmin))
	}
}

// requireAdmin redirects unauthenticated requests to the login page.
func (a *App) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !IsAdmin(c) {
			return c.Redirect(http.StatusSeeOther, "/admin/")
		}
		return next(c)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.stopCleanup != nil {
		a.stopCleanup()
		a.stopCleanup = nil
	}
	if a.Store != nil {
		a.Store.Close()
	}
	if a.usageStore != nil {
		a.usageStore.Close()
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return nil
}
