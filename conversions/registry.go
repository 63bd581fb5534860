// Package conversions holds the static table of unit conversion pairs and
// categories, plus lookup, search and display-formatting helpers.
//
// The table is built once at package init and never mutated, so every
// function here is safe for concurrent use without locking.
package conversions

import "fmt"

// DefaultRelatedLimit is the number of related converters shown on a page.
const DefaultRelatedLimit = 3

var (
	slugIndex     map[string]int
	categoryIndex map[string]int
)

func init() {
	categoryIndex = make(map[string]int, len(categories))
	for i, c := range categories {
		if _, dup := categoryIndex[c.ID]; dup {
			panic(fmt.Sprintf("conversions: duplicate category %q", c.ID))
		}
		categoryIndex[c.ID] = i
	}
	slugIndex = make(map[string]int, len(conversions))
	for i, p := range conversions {
		if _, dup := slugIndex[p.Slug]; dup {
			panic(fmt.Sprintf("conversions: duplicate slug %q", p.Slug))
		}
		if _, ok := categoryIndex[p.Category]; !ok {
			panic(fmt.Sprintf("conversions: %q references unknown category %q", p.Slug, p.Category))
		}
		if !p.Transform.valid() {
			panic(fmt.Sprintf("conversions: %q has a non-invertible transform", p.Slug))
		}
		slugIndex[p.Slug] = i
	}
}

// Conversions returns every registered pair in registration order.
func Conversions() []Pair {
	out := make([]Pair, len(conversions))
	copy(out, conversions)
	return out
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		c.Converters = append([]string(nil), c.Converters...)
		out[i] = c
	}
	return out
}

// BySlug returns the pair registered under slug.
func BySlug(slug string) (Pair, bool) {
	i, ok := slugIndex[slug]
	if !ok {
		return Pair{}, false
	}
	return conversions[i], true
}

// ByCategory returns all pairs whose Category field equals id, in
// registration order. The category's curated Converters list is not consulted.
func ByCategory(id string) []Pair {
	var out []Pair
	for _, p := range conversions {
		if p.Category == id {
			out = append(out, p)
		}
	}
	return out
}

// CategoryByID returns the category with the given id.
func CategoryByID(id string) (Category, bool) {
	i, ok := categoryIndex[id]
	if !ok {
		return Category{}, false
	}
	c := categories[i]
	c.Converters = append([]string(nil), c.Converters...)
	return c, true
}

// Featured resolves a category's curated Converters list to pairs, skipping
// slugs that are not registered.
func Featured(c Category) []Pair {
	var out []Pair
	for _, slug := range c.Converters {
		if p, ok := BySlug(slug); ok {
			out = append(out, p)
		}
	}
	return out
}

// Related returns up to limit pairs for the converter page of slug:
// same-category pairs first, then the rest, both in registration order.
// It returns nil when slug is unknown or limit is not positive.
func Related(slug string, limit int) []Pair {
	current, ok := BySlug(slug)
	if !ok || limit <= 0 {
		return nil
	}
	same := make([]Pair, 0, len(conversions))
	var other []Pair
	for _, p := range conversions {
		switch {
		case p.Slug == slug:
		case p.Category == current.Category:
			same = append(same, p)
		default:
			other = append(other, p)
		}
	}
	out := append(same, other...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
