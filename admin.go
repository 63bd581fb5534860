package convcalc

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminPost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id := c.Param("id")
	if id == "new" {
		return Render(c, a.Views.AdminForm(BlogPost{
			Author:    a.Config.Author,
			Date:      time.Now().Format("2006-01-02"),
			Published: true,
		}, CsrfToken(c)))
	}
	post, err := a.Store.GetPostByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return Render(c, a.Views.AdminForm(post, CsrfToken(c)))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	a.Logger.Warn("admin login failed", zap.String("ip", ip))
	return Render(c, a.Views.AdminLogin(true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	id := strings.TrimSpace(c.FormValue("id"))
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return c.Redirect(http.StatusSeeOther, "/admin/?msg=Title+is+required.")
	}
	base := Slugify(c.FormValue("slug"))
	if base == "" {
		base = Slugify(title)
	}
	if base == "" {
		return c.Redirect(http.StatusSeeOther, "/admin/?msg=Slug+is+required.+Add+a+title+or+slug.")
	}
	slug, err := a.Store.UniqueSlug(base, id)
	if err != nil {
		return err
	}
	date := strings.TrimSpace(c.FormValue("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.Redirect(http.StatusSeeOther, "/admin/?msg=Invalid+date+format.+Use+YYYY-MM-DD.")
	}
	author := strings.TrimSpace(c.FormValue("author"))
	if author == "" {
		author = a.Config.Author
	}
	tags := splitTags(c.FormValue("tags"))

	saved, err := a.Store.SavePost(BlogPost{
		ID:         id,
		Slug:       slug,
		Title:      title,
		Summary:    strings.TrimSpace(c.FormValue("summary")),
		Content:    c.FormValue("content"),
		Author:     author,
		Date:       date,
		Tags:       tags,
		CoverImage: strings.TrimSpace(c.FormValue("cover_image")),
		Featured:   c.FormValue("featured") != "",
		Published:  c.FormValue("published") != "",
	})
	if err != nil {
		return err
	}
	a.Cache.Invalidate()
	a.Logger.Info("post saved", zap.String("id", saved.ID), zap.String("slug", saved.Slug))
	return a.renderAdminDashboard(c, "saved")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id := c.Param("id")
	if err := a.Store.DeletePost(id); err != nil {
		return err
	}
	a.Cache.Invalidate()
	a.Logger.Info("post deleted", zap.String("id", id))
	return a.renderAdminDashboard(c, "deleted")
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	posts, err := a.Store.ListAllPosts()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminDashboard(posts, msg, CsrfToken(c)))
}
