package convcalc

import "github.com/eringen/convcalc/conversions"

// BlogPost is the content type stored in SQLite and rendered by templates.
// Content is HTML; templates sanitise it before output.
type BlogPost struct {
	ID         string
	Slug       string
	Title      string
	Summary    string
	Content    string
	Author     string
	Date       string // YYYY-MM-DD publication date
	UpdatedAt  string // RFC 3339
	Tags       []string
	CoverImage string
	Featured   bool
	Published  bool
	Link       string
}

// Image is the metadata of an uploaded cover image.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int
	UploadedAt   string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Keywords    []string
}

// CategorySummary is a category with its curated converters resolved.
type CategorySummary struct {
	Category   conversions.Category
	Converters []conversions.Pair
}

// HomeData is rendered by ViewFuncs.Home.
type HomeData struct {
	Meta       PageMeta
	Categories []CategorySummary
	Popular    []conversions.Pair
	Featured   []BlogPost
	Recent     []BlogPost
}

// CategoryData is rendered by ViewFuncs.Category.
type CategoryData struct {
	Meta        PageMeta
	Category    conversions.Category
	Conversions []conversions.Pair
}

// ConverterData is rendered by ViewFuncs.Converter and ViewFuncs.ConverterResult.
type ConverterData struct {
	Meta      PageMeta
	Pair      conversions.Pair
	Category  conversions.Category
	Direction conversions.Direction
	From      conversions.Unit
	To        conversions.Unit
	Input     string
	Result    string // empty when Input is not a number
	Reference []string
	Related   []conversions.Pair
}

// SearchData is rendered by ViewFuncs.Search.
type SearchData struct {
	Meta    PageMeta
	Query   string
	Results []conversions.Pair
}

// KitchenData is rendered by ViewFuncs.Kitchen.
type KitchenData struct {
	Meta        PageMeta
	Ingredients []conversions.Ingredient
	Selected    conversions.Ingredient
	Cups        string
	Grams       string
}

// BlogData is rendered by ViewFuncs.Blog.
type BlogData struct {
	Meta      PageMeta
	Posts     []BlogPost
	Featured  []BlogPost
	Tags      []string
	ActiveTag string
}

// PostData is rendered by ViewFuncs.Post.
type PostData struct {
	Meta    PageMeta
	Post    BlogPost
	Related []BlogPost
}

// StaticPage names one of the informational pages.
type StaticPage string

const (
	PageAbout   StaticPage = "about"
	PageContact StaticPage = "contact"
	PagePrivacy StaticPage = "privacy"
	PageTerms   StaticPage = "terms"
)
