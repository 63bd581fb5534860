// Package views renders convcalc pages as templ components. Each page body
// is a component; Views wraps it in the site layout and exposes the set as
// convcalc.ViewFuncs.
package views

import (
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/convcalc"
	"github.com/eringen/convcalc/conversions"
)

// Views renders every page of the site for one Site configuration.
type Views struct {
	site Site
	nav  []conversions.Category
}

// NewViews returns the views for site. A zero Year becomes the current year.
func NewViews(site Site) *Views {
	if site.Year == 0 {
		site.Year = time.Now().Year()
	}
	return &Views{site: site, nav: conversions.Categories()}
}

// New returns the ViewFuncs the App calls for cfg.
func New(cfg convcalc.SiteConfig) convcalc.ViewFuncs {
	return NewViews(Site{
		Name:        cfg.Name,
		URL:         cfg.URL,
		Description: cfg.Description,
		AdsEnabled:  cfg.AdsEnabled,
	}).Funcs()
}

// Funcs exposes the views as convcalc.ViewFuncs.
func (v *Views) Funcs() convcalc.ViewFuncs {
	return convcalc.ViewFuncs{
		Home: func(d convcalc.HomeData) templ.Component {
			return v.Layout(d.Meta, HomePage(d))
		},
		Category: func(d convcalc.CategoryData) templ.Component {
			return v.Layout(d.Meta, CategoryPage(d))
		},
		Converter: func(d convcalc.ConverterData) templ.Component {
			return v.Layout(d.Meta, ConverterPage(d))
		},
		ConverterResult: ConverterResult,
		Search: func(d convcalc.SearchData) templ.Component {
			return v.Layout(d.Meta, SearchPage(d))
		},
		Kitchen: func(d convcalc.KitchenData) templ.Component {
			return v.Layout(d.Meta, KitchenPage(d))
		},
		Blog: func(d convcalc.BlogData) templ.Component {
			return v.Layout(d.Meta, BlogPage(d))
		},
		Post: func(d convcalc.PostData) templ.Component {
			return v.Layout(d.Meta, PostPage(d))
		},
		Page: func(p convcalc.StaticPage, meta convcalc.PageMeta) templ.Component {
			return v.Layout(meta, InfoPage(v.site.Name, p))
		},
		AdminLogin: func(showError bool, csrf string) templ.Component {
			return v.Layout(v.titled("Admin login"), AdminLoginPage(showError, csrf))
		},
		AdminDashboard: func(posts []convcalc.BlogPost, msg, csrf string) templ.Component {
			return v.Layout(v.titled("Dashboard"), AdminDashboardPage(posts, msg, csrf))
		},
		AdminForm: func(post convcalc.BlogPost, csrf string) templ.Component {
			return v.Layout(v.titled("Edit post"), AdminFormPage(post, csrf))
		},
		AdminImages: func(images []convcalc.Image, csrf string) templ.Component {
			return v.Layout(v.titled("Images"), AdminImagesPage(images, csrf))
		},
		NotFound: func() templ.Component {
			return v.Layout(v.titled("Page not found"), NotFoundPage())
		},
		ServerError: func() templ.Component {
			return v.Layout(v.titled("Something went wrong"), ServerErrorPage())
		},
	}
}

func (v *Views) titled(title string) convcalc.PageMeta {
	return convcalc.PageMeta{Title: title + " | " + v.site.Name}
}
