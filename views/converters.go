package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/convcalc"
	"github.com/eringen/convcalc/conversions"
)

func pairHref(p conversions.Pair) string {
	return "/" + p.Category + "/" + p.Slug + "/"
}

// pairList renders converter links with their unit symbols.
func pairList(m *markup, pairs []conversions.Pair) {
	m.raw(`<ul class="pair-list">`)
	for _, p := range pairs {
		m.raw("<li><a")
		m.attr("href", pairHref(p))
		m.raw(">")
		m.text(p.Title)
		m.raw(`</a> <span class="reference">`)
		m.text(p.From.Symbol)
		m.raw(" &rarr; ")
		m.text(p.To.Symbol)
		m.raw("</span></li>")
	}
	m.raw("</ul>\n")
}

func breadcrumbs(m *markup, links [][2]string, current string) {
	m.raw(`<nav class="breadcrumbs">`)
	for _, l := range links {
		m.raw("<a")
		m.attr("href", l[0])
		m.raw(">")
		m.text(l[1])
		m.raw("</a> / ")
	}
	m.text(current)
	m.raw("</nav>\n")
}

// HomePage lists categories, popular converters and recent posts.
func HomePage(d convcalc.HomeData) templ.Component {
	return component(func(m *markup) {
		m.raw(`<section class="hero">`, "\n")
		m.raw("<h1>Quick &amp; Accurate Unit Conversions</h1>\n")
		m.raw("<p>Convert weight, length, temperature, volume, data size, time, area and speed instantly.</p>\n")
		searchForm(m, "", "Search conversions, e.g. fahrenheit to celsius")
		m.raw("</section>\n")

		m.raw("<section>\n<h2>Categories</h2>\n", `<div class="grid">`)
		for _, cs := range d.Categories {
			m.raw(`<div class="card"><h3><a`)
			m.attr("href", "/"+cs.Category.ID+"/")
			m.raw(">")
			m.text(cs.Category.Icon, " ", cs.Category.Name)
			m.raw("</a></h3><p>")
			m.text(cs.Category.Description)
			m.raw("</p>")
			pairList(m, cs.Converters)
			m.raw("</div>\n")
		}
		m.raw("</div>\n</section>\n")

		if len(d.Popular) > 0 {
			m.raw("<section>\n<h2>Popular conversions</h2>\n")
			pairList(m, d.Popular)
			m.raw("</section>\n")
		}

		m.raw("<section>\n<h2>Kitchen calculator</h2>\n")
		m.raw(`<p><a href="/calculators/kitchen/">Convert cups to grams</a> for flour, sugar, butter and water.</p>`, "\n")
		m.raw("</section>\n")

		if len(d.Featured) > 0 {
			m.raw("<section>\n<h2>Featured guides</h2>\n")
			postGrid(m, d.Featured)
			m.raw("</section>\n")
		}
		if len(d.Recent) > 0 {
			m.raw("<section>\n<h2>Latest from the blog</h2>\n")
			postGrid(m, d.Recent)
			m.raw(`<p><a href="/blog/">All posts &rarr;</a></p>`, "\n</section>\n")
		}
	})
}

// CategoryPage lists every converter in one category.
func CategoryPage(d convcalc.CategoryData) templ.Component {
	return component(func(m *markup) {
		breadcrumbs(m, [][2]string{{"/", "Home"}}, d.Category.Name)
		m.raw("<h1>")
		m.text(d.Category.Icon, " ", d.Category.Name, " Converters")
		m.raw("</h1>\n<p>")
		m.text(d.Category.Description)
		m.raw("</p>\n", `<div class="grid">`)
		if len(d.Conversions) == 0 {
			m.raw("<p>No converters in this category yet.</p>")
		}
		for _, p := range d.Conversions {
			m.raw(`<div class="card"><h2><a`)
			m.attr("href", pairHref(p))
			m.raw(">")
			m.text(p.Title)
			m.raw("</a></h2><p>")
			m.text(p.Description)
			m.raw("</p></div>\n")
		}
		m.raw("</div>\n")
	})
}

// ConverterPage is the converter widget with its reference, explanation
// and related links. Without JavaScript the form submits as a plain GET.
func ConverterPage(d convcalc.ConverterData) templ.Component {
	return component(func(m *markup) {
		p := d.Pair
		breadcrumbs(m, [][2]string{{"/", "Home"}, {"/" + d.Category.ID + "/", d.Category.Name}}, p.Title)
		m.raw("<h1>")
		m.text(p.From.Name, " to ", p.To.Name, " Converter")
		m.raw("</h1>\n<p>")
		m.text(p.Description)
		m.raw("</p>\n")

		swapTo := conversions.Reverse
		if d.Direction == conversions.Reverse {
			swapTo = conversions.Forward
		}
		m.raw(`<form id="converter-form" class="converter" method="get"`)
		m.attr("action", pairHref(p))
		m.attr("data-dir", d.Direction.String())
		m.raw(">\n", `<div class="converter-row"><label>`)
		m.raw(`<input type="text" inputmode="decimal" name="value"`)
		m.attr("value", d.Input)
		m.raw(` aria-label="Value to convert" autocomplete="off"> `)
		m.raw(`<span id="converter-from">`)
		m.text(d.From.Name, " (", d.From.Symbol, ")")
		m.raw("</span></label>\n")
		m.raw(`<button type="submit" class="convert-button">Convert</button>`, "\n")
		m.raw(`<button id="converter-swap" type="submit" name="dir"`)
		m.attr("value", swapTo.String())
		m.raw(` title="Swap units">&#8646;</button>`, "\n")
		m.raw(`<span id="converter-to">`)
		m.text(d.To.Name, " (", d.To.Symbol, ")")
		m.raw("</span></div>\n")
		m.raw(`<div id="converter-result" class="converter-result" aria-live="polite">`)
		converterResult(m, d)
		m.raw("</div>\n<noscript>")
		m.hidden("dir", d.Direction.String())
		m.raw("</noscript>\n</form>\n")

		m.raw("<section>\n<h2>Quick reference</h2>\n", `<ul class="reference">`)
		for _, line := range d.Reference {
			m.raw("<li>")
			m.text(line)
			m.raw("</li>")
		}
		m.raw("</ul>\n</section>\n")

		m.raw("<section>\n<h2>")
		m.text("How to convert ", p.From.Name, " to ", p.To.Name)
		m.raw("</h2>\n<p>")
		m.text(p.Explanation)
		m.raw("</p>\n</section>\n")

		if len(d.Related) > 0 {
			m.raw("<section>\n<h2>Related conversions</h2>\n")
			pairList(m, d.Related)
			m.raw("</section>\n")
		}
	})
}

// ConverterResult is the live-update fragment swapped into the widget.
func ConverterResult(d convcalc.ConverterData) templ.Component {
	return component(func(m *markup) { converterResult(m, d) })
}

func converterResult(m *markup, d convcalc.ConverterData) {
	if d.Result == "" {
		m.raw(`<span class="error">Enter a valid number</span>`)
		return
	}
	m.raw("<span>")
	m.text(d.Input, " ", d.From.Symbol, " = ")
	m.raw("<strong>")
	m.text(d.Result)
	m.raw("</strong> ")
	m.text(d.To.Symbol)
	m.raw("</span>")
}

// SearchPage shows the search box and its matches.
func SearchPage(d convcalc.SearchData) templ.Component {
	return component(func(m *markup) {
		m.raw("<h1>Search converters</h1>\n")
		searchForm(m, d.Query, "e.g. kg to lbs")
		if d.Query == "" {
			return
		}
		if len(d.Results) == 0 {
			m.raw("<p>No converters match &ldquo;")
			m.text(d.Query)
			m.raw("&rdquo;. Try a unit name such as &ldquo;pounds&rdquo; or a symbol such as &ldquo;kg&rdquo;.</p>\n")
			return
		}
		m.raw("<p>")
		m.text(strconv.Itoa(len(d.Results)), " result(s) for ")
		m.raw("&ldquo;")
		m.text(d.Query)
		m.raw("&rdquo;</p>\n")
		pairList(m, d.Results)
	})
}

// KitchenPage is the cups-to-grams calculator.
func KitchenPage(d convcalc.KitchenData) templ.Component {
	return component(func(m *markup) {
		breadcrumbs(m, [][2]string{{"/", "Home"}}, "Kitchen Converter")
		m.raw("<h1>Kitchen Converter</h1>\n")
		m.raw("<p>Convert kitchen measurements instantly. Perfect for baking and cooking.</p>\n")

		m.raw(`<form class="converter" method="get" action="/calculators/kitchen/">`, "\n")
		m.raw(`<div class="converter-row"><label>Ingredient <select name="ingredient">`)
		for _, in := range d.Ingredients {
			m.raw("<option")
			m.attr("value", in.ID)
			m.flag("selected", in.ID == d.Selected.ID)
			m.raw(">")
			m.text(in.Name)
			m.raw("</option>")
		}
		m.raw("</select></label>\n")
		m.raw(`<label>Cups <input type="text" inputmode="decimal" name="cups"`)
		m.attr("value", d.Cups)
		m.raw("></label>\n", `<button type="submit">Convert</button></div>`, "\n")
		m.raw(`<div class="converter-result" aria-live="polite">`)
		if d.Grams != "" {
			m.text(d.Cups, " cup(s) of ", d.Selected.Name, " = ")
			m.raw("<strong>")
			m.text(d.Grams, " g")
			m.raw("</strong>")
		} else {
			m.raw(`<span class="error">Enter a valid number</span>`)
		}
		m.raw("</div>\n</form>\n")

		m.raw("<section>\n<h2>Grams per cup</h2>\n<table>\n<thead><tr><th>Ingredient</th><th>1 cup</th></tr></thead>\n<tbody>")
		for _, in := range d.Ingredients {
			m.raw("<tr><td>")
			m.text(in.Name)
			m.raw("</td><td>")
			m.text(conversions.FormatNumber(in.GramsPerCup, 3), " g")
			m.raw("</td></tr>")
		}
		m.raw("</tbody>\n</table>\n</section>\n")

		m.raw("<section>\n<h2>Why weigh ingredients?</h2>\n")
		m.raw("<p>Weight measurements are more accurate because they are not affected by how tightly you pack ingredients or the size of your measuring cups.</p>\n")
		m.raw(`<p>Need oven temperatures? Use the <a href="/temperature/fahrenheit-to-celsius/">Fahrenheit to Celsius converter</a>.</p>`, "\n")
		m.raw("</section>\n")
	})
}
