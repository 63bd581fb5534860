package convcalc

import (
	"reflect"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Cups to Grams: A Guide!  ", "cups-to-grams-a-guide"},
		{"°F vs °C", "f-vs-c"},
		{"---", ""},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"http://localhost:3000", nil, "http://localhost:3000/"},
		{"https://example.com/", []string{"weight", "pounds-to-kilograms"}, "https://example.com/weight/pounds-to-kilograms/"},
		{"https://example.com/sub", []string{"blog"}, "https://example.com/sub/blog/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segs...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segs, got, tt.want)
		}
	}
}

func TestSplitTags(t *testing.T) {
	got := splitTags(" Baking , , metric,BAKING,  ")
	if !reflect.DeepEqual(got, []string{"Baking", "metric"}) {
		t.Errorf("splitTags = %v", got)
	}
	if got := splitTags(""); got != nil {
		t.Errorf("splitTags(\"\") = %v, want nil", got)
	}
}

func TestRelatedPosts(t *testing.T) {
	current := BlogPost{Slug: "cur", Tags: []string{"Weight", "cooking"}}
	posts := []BlogPost{
		current,
		{Slug: "one-tag", Tags: []string{"weight"}},
		{Slug: "other", Tags: []string{"length"}},
		{Slug: "both-tags", Tags: []string{" Cooking ", "WEIGHT"}},
		{Slug: "late", Tags: []string{"cooking"}},
	}
	got := slugsOf(relatedPosts(current, posts, 10))
	if !reflect.DeepEqual(got, []string{"both-tags", "one-tag", "late"}) {
		t.Errorf("relatedPosts = %v", got)
	}
	got = slugsOf(relatedPosts(current, posts, 2))
	if !reflect.DeepEqual(got, []string{"both-tags", "one-tag"}) {
		t.Errorf("relatedPosts limit 2 = %v", got)
	}
	if got := relatedPosts(BlogPost{Slug: "x"}, posts, 3); len(got) != 0 {
		t.Errorf("untagged post should have no related posts, got %v", slugsOf(got))
	}
}
