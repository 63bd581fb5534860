package convcalc

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/convcalc/conversions"
	"github.com/eringen/convcalc/usage"
)

const maxDescriptionLen = 160

// pageMeta builds metadata for a regular page. Titles get the site name
// appended; an empty title yields the home page title.
func (a *App) pageMeta(title, description, ogType string, segments ...string) PageMeta {
	full := a.Config.Name + " - Quick & Accurate Conversions"
	if title != "" {
		full = title + " | " + a.Config.Name
	}
	return PageMeta{
		Title:       full,
		Description: truncate(description, maxDescriptionLen),
		URL:         BuildURL(a.Config.URL, segments...),
		OGType:      ogType,
	}
}

// ConverterMeta builds the title, description, canonical URL and keywords
// of a converter page.
func ConverterMeta(p conversions.Pair, cfg SiteConfig) PageMeta {
	from := strings.ToLower(p.From.Name)
	to := strings.ToLower(p.To.Name)
	description := "Convert " + p.From.Name + " to " + p.To.Name + " instantly. " +
		p.Description + " Use our free " + p.From.Symbol + " to " + p.To.Symbol + " converter."
	return PageMeta{
		Title:       p.From.Name + " to " + p.To.Name + " Converter - Free Online Tool",
		Description: truncate(description, maxDescriptionLen),
		URL:         BuildURL(cfg.URL, p.Category, p.Slug),
		OGType:      "website",
		Keywords: []string{
			from + " to " + to,
			p.From.Symbol + " to " + p.To.Symbol,
			"convert " + from,
			from + " converter",
			to + " converter",
			p.Category + " converter",
			"unit conversion",
			"free converter",
			"online calculator",
		},
	}
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func (a *App) handleCategory(c echo.Context) error {
	cat, ok := conversions.CategoryByID(c.Param("category"))
	if !ok {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	meta := a.pageMeta(cat.Name+" Converters", cat.Description, "website", cat.ID)
	return Render(c, a.Views.Category(CategoryData{
		Meta:        meta,
		Category:    cat,
		Conversions: conversions.ByCategory(cat.ID),
	}))
}

func (a *App) handleConverter(c echo.Context) error {
	pair, ok := conversions.BySlug(c.Param("slug"))
	if !ok || pair.Category != c.Param("category") {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
	}
	cat, _ := conversions.CategoryByID(pair.Category)

	input := strings.TrimSpace(c.QueryParam("value"))
	if input == "" {
		input = "1"
	}
	data := converterData(pair, cat, conversions.ParseDirection(c.QueryParam("dir")), input, a.Config)
	if data.Result != "" {
		a.Metrics.observeConversion(pair.Slug, data.Direction)
	}
	c.Set(usage.SlugKey, pair.Slug)

	if c.Request().Header.Get("HX-Request") == "true" && c.QueryParam("partial") == "result" {
		return Render(c, a.Views.ConverterResult(data))
	}
	return Render(c, a.Views.Converter(data))
}

// converterData evaluates input against pair in the given direction. Result
// stays empty when input is not a finite number.
func converterData(pair conversions.Pair, cat conversions.Category, dir conversions.Direction, input string, cfg SiteConfig) ConverterData {
	from, to := pair.Units(dir)
	data := ConverterData{
		Meta:      ConverterMeta(pair, cfg),
		Pair:      pair,
		Category:  cat,
		Direction: dir,
		From:      from,
		To:        to,
		Input:     input,
		Reference: pair.QuickReference(),
		Related:   conversions.Related(pair.Slug, conversions.DefaultRelatedLimit),
	}
	if v, ok := conversions.ParseValue(input); ok {
		data.Result = conversions.FormatNumber(pair.Apply(v, dir), conversions.DefaultDecimals)
	}
	return data
}

func (a *App) handleSearch(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	results := conversions.Search(q)
	// A single hit goes straight to its converter.
	if len(results) == 1 && c.QueryParam("exact") != "" {
		p := results[0]
		return c.Redirect(http.StatusSeeOther, "/"+p.Category+"/"+p.Slug+"/")
	}
	title := "Search"
	if q != "" {
		title = "Search results for " + q
	}
	return Render(c, a.Views.Search(SearchData{
		Meta:    a.pageMeta(title, "Find a unit converter by name or symbol.", "website", "search"),
		Query:   q,
		Results: results,
	}))
}

func (a *App) handleKitchen(c echo.Context) error {
	ingredients := conversions.Ingredients()
	selected, ok := conversions.IngredientByID(c.QueryParam("ingredient"))
	if !ok {
		selected = ingredients[0]
	}
	data := KitchenData{
		Meta: PageMeta{
			Title:       "Kitchen Converter - Cups to Grams, Ounces to ML | Free Online Tool",
			Description: "Convert kitchen measurements instantly. Cups to grams, ounces to milliliters, Fahrenheit to Celsius. Perfect for baking and cooking.",
			URL:         BuildURL(a.Config.URL, "calculators", "kitchen"),
			OGType:      "website",
		},
		Ingredients: ingredients,
		Selected:    selected,
	}
	// Valid grams win; otherwise convert cups.
	if g, ok := conversions.ParseValue(c.QueryParam("grams")); ok {
		data.Grams = strings.TrimSpace(c.QueryParam("grams"))
		data.Cups = conversions.FormatNumber(selected.GramsToCups(g), 2)
	} else {
		data.Cups = strings.TrimSpace(c.QueryParam("cups"))
		if data.Cups == "" {
			data.Cups = "1"
		}
		if v, ok := conversions.ParseValue(data.Cups); ok {
			data.Grams = conversions.FormatNumber(selected.CupsToGrams(v), 1)
		}
	}
	return Render(c, a.Views.Kitchen(data))
}
