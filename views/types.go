package views

// Site holds the site-wide settings every page sees.
type Site struct {
	Name        string
	URL         string
	Description string
	AdsEnabled  bool
	Year        int
}
