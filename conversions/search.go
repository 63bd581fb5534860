package conversions

import "strings"

// stop words dropped from search queries ("pounds to kg").
var searchStopWords = map[string]struct{}{
	"to":      {},
	"in":      {},
	"into":    {},
	"convert": {},
}

// Search returns the pairs matching every token of query, in registration
// order. Matching is case-insensitive against the slug, title, and the unit
// ids, names and symbols of both sides.
func Search(query string) []Pair {
	var tokens []string
	for _, t := range strings.Fields(strings.ToLower(query)) {
		if _, stop := searchStopWords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}
	if len(tokens) == 0 {
		return nil
	}
	var out []Pair
	for _, p := range conversions {
		hay := searchText(p)
		matched := true
		for _, t := range tokens {
			if !strings.Contains(hay, t) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, p)
		}
	}
	return out
}

func searchText(p Pair) string {
	return strings.ToLower(strings.Join([]string{
		p.Slug, p.Title,
		p.From.ID, p.From.Name, p.From.Symbol,
		p.To.ID, p.To.Name, p.To.Symbol,
	}, " "))
}
