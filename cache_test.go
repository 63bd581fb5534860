package convcalc

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestPostCache(t *testing.T) {
	s := setupTestStore(t)
	mustSave(t, s, BlogPost{Slug: "a", Title: "A", Date: "2024-01-01", Tags: []string{"weight"}, Published: true, Featured: true})
	mustSave(t, s, BlogPost{Slug: "b", Title: "B", Date: "2024-02-01", Tags: []string{"length"}, Published: true})

	c := NewPostCache(s, time.Hour)

	posts, err := c.ListPosts("")
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if got := slugsOf(posts); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Errorf("ListPosts = %v", got)
	}

	weight, _ := c.ListPosts(" Weight ")
	if got := slugsOf(weight); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("ListPosts(Weight) = %v", got)
	}

	featured, _ := c.Featured(3)
	if got := slugsOf(featured); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("Featured = %v", got)
	}
	recent, _ := c.Recent(1)
	if got := slugsOf(recent); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("Recent(1) = %v", got)
	}

	tags, _ := c.ListTags()
	if !reflect.DeepEqual(tags, []string{"length", "weight"}) {
		t.Errorf("ListTags = %v", tags)
	}

	if _, err := c.GetPost("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPost(missing) = %v, want ErrNotFound", err)
	}
}

func TestPostCacheInvalidate(t *testing.T) {
	s := setupTestStore(t)
	c := NewPostCache(s, time.Hour)

	posts, err := c.ListPosts("")
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("expected empty cache, got %d posts", len(posts))
	}

	mustSave(t, s, BlogPost{Slug: "fresh", Title: "Fresh", Date: "2024-01-01", Published: true})
	if posts, _ := c.ListPosts(""); len(posts) != 0 {
		t.Error("cache should still serve the old snapshot before Invalidate")
	}

	c.Invalidate()
	got, err := c.GetPost("fresh")
	if err != nil {
		t.Fatalf("GetPost after Invalidate: %v", err)
	}
	if got.Title != "Fresh" {
		t.Errorf("Title = %q", got.Title)
	}
}

func TestPostCacheExpires(t *testing.T) {
	s := setupTestStore(t)
	c := NewPostCache(s, time.Millisecond)

	c.ListPosts("")
	mustSave(t, s, BlogPost{Slug: "later", Title: "Later", Date: "2024-01-01", Published: true})
	time.Sleep(5 * time.Millisecond)

	if _, err := c.GetPost("later"); err != nil {
		t.Errorf("expired cache should reload: %v", err)
	}
}
