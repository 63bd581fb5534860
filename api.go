package convcalc

import (
	"math"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/convcalc/conversions"
)

type apiError struct {
	Error string `json:"error"`
}

type apiUnit struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type apiPair struct {
	Slug     string  `json:"slug"`
	Category string  `json:"category"`
	Title    string  `json:"title"`
	From     apiUnit `json:"from"`
	To       apiUnit `json:"to"`
	URL      string  `json:"url"`
}

type apiPairDetail struct {
	apiPair
	Description    string   `json:"description"`
	Explanation    string   `json:"explanation"`
	QuickReference []string `json:"quickReference"`
	Related        []string `json:"related"`
}

type apiConvertResult struct {
	Slug      string  `json:"slug"`
	Direction string  `json:"direction"`
	Input     float64 `json:"input"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
	From      apiUnit `json:"from"`
	To        apiUnit `json:"to"`
}

type apiCategory struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Converters  []string `json:"converters"`
	URL         string   `json:"url"`
}

func toAPIUnit(u conversions.Unit) apiUnit {
	return apiUnit{ID: u.ID, Name: u.Name, Symbol: u.Symbol}
}

func (a *App) toAPIPair(p conversions.Pair) apiPair {
	return apiPair{
		Slug:     p.Slug,
		Category: p.Category,
		Title:    p.Title,
		From:     toAPIUnit(p.From),
		To:       toAPIUnit(p.To),
		URL:      BuildURL(a.Config.URL, p.Category, p.Slug),
	}
}

func (a *App) toAPIPairs(pairs []conversions.Pair) []apiPair {
	out := make([]apiPair, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, a.toAPIPair(p))
	}
	return out
}

// GET /api/conversions?category=
func (a *App) handleAPIConversions(c echo.Context) error {
	pairs := conversions.Conversions()
	if cat := c.QueryParam("category"); cat != "" {
		if _, ok := conversions.CategoryByID(cat); !ok {
			a.Metrics.observeAPI("conversions", "not_found")
			return c.JSON(http.StatusNotFound, apiError{Error: "unknown category"})
		}
		pairs = conversions.ByCategory(cat)
	}
	a.Metrics.observeAPI("conversions", "ok")
	return c.JSON(http.StatusOK, a.toAPIPairs(pairs))
}

// GET /api/conversions/:slug
func (a *App) handleAPIConversion(c echo.Context) error {
	p, ok := conversions.BySlug(c.Param("slug"))
	if !ok {
		a.Metrics.observeAPI("conversion", "not_found")
		return c.JSON(http.StatusNotFound, apiError{Error: "unknown conversion"})
	}
	var related []string
	for _, r := range conversions.Related(p.Slug, conversions.DefaultRelatedLimit) {
		related = append(related, r.Slug)
	}
	a.Metrics.observeAPI("conversion", "ok")
	return c.JSON(http.StatusOK, apiPairDetail{
		apiPair:        a.toAPIPair(p),
		Description:    p.Description,
		Explanation:    p.Explanation,
		QuickReference: p.QuickReference(),
		Related:        related,
	})
}

// GET /api/convert/:slug?value=&dir=
func (a *App) handleAPIConvert(c echo.Context) error {
	p, ok := conversions.BySlug(c.Param("slug"))
	if !ok {
		a.Metrics.observeAPI("convert", "not_found")
		return c.JSON(http.StatusNotFound, apiError{Error: "unknown conversion"})
	}
	v, ok := conversions.ParseValue(c.QueryParam("value"))
	if !ok {
		a.Metrics.observeAPI("convert", "bad_request")
		return c.JSON(http.StatusBadRequest, apiError{Error: "value must be a finite number"})
	}
	dir := conversions.ParseDirection(c.QueryParam("dir"))
	from, to := p.Units(dir)
	result := p.Apply(v, dir)
	// Finite input can still overflow, and JSON has no encoding for Inf.
	if math.IsInf(result, 0) || math.IsNaN(result) {
		a.Metrics.observeAPI("convert", "bad_request")
		return c.JSON(http.StatusBadRequest, apiError{Error: "result is out of range"})
	}
	a.Metrics.observeConversion(p.Slug, dir)
	a.Metrics.observeAPI("convert", "ok")
	return c.JSON(http.StatusOK, apiConvertResult{
		Slug:      p.Slug,
		Direction: dir.String(),
		Input:     v,
		Result:    result,
		Formatted: conversions.FormatNumber(result, conversions.DefaultDecimals),
		From:      toAPIUnit(from),
		To:        toAPIUnit(to),
	})
}

// GET /api/search?q=
func (a *App) handleAPISearch(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	a.Metrics.observeAPI("search", "ok")
	return c.JSON(http.StatusOK, a.toAPIPairs(conversions.Search(q)))
}

// GET /api/categories
func (a *App) handleAPICategories(c echo.Context) error {
	cats := conversions.Categories()
	out := make([]apiCategory, 0, len(cats))
	for _, cat := range cats {
		out = append(out, apiCategory{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			Icon:        cat.Icon,
			Converters:  cat.Converters,
			URL:         BuildURL(a.Config.URL, cat.ID),
		})
	}
	a.Metrics.observeAPI("categories", "ok")
	return c.JSON(http.StatusOK, out)
}
