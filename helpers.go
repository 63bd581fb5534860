package convcalc

import (
	"net/url"
	"path"
	"sort"
	"strings"
)

// relatedPostsLimit caps the "Related posts" list under an article.
const relatedPostsLimit = 3

// Slugify lowercases s and joins its ASCII letter and digit runs with
// hyphens. Everything else, including non-ASCII letters, separates words.
func Slugify(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
	return strings.Join(words, "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// splitTags parses the admin's comma-separated tag field. Blank entries and
// case-insensitive duplicates are dropped; the first spelling wins.
func splitTags(field string) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, t := range strings.Split(field, ",") {
		t = strings.TrimSpace(t)
		key := normalizeTag(t)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, t)
	}
	return tags
}

// relatedPosts ranks posts by how many tags they share with current and
// returns at most limit of them. Posts sharing no tag are left out; ties
// keep the order of posts.
func relatedPosts(current BlogPost, posts []BlogPost, limit int) []BlogPost {
	want := make(map[string]struct{}, len(current.Tags))
	for _, t := range current.Tags {
		if key := normalizeTag(t); key != "" {
			want[key] = struct{}{}
		}
	}
	type scored struct {
		post   BlogPost
		shared int
	}
	var hits []scored
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		n := 0
		for _, t := range p.Tags {
			if _, ok := want[normalizeTag(t)]; ok {
				n++
			}
		}
		if n > 0 {
			hits = append(hits, scored{post: p, shared: n})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].shared > hits[j].shared })
	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]BlogPost, len(hits))
	for i, h := range hits {
		out[i] = h.post
	}
	return out
}
