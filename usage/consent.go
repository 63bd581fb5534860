package usage

import "net/http"

// ConsentCookie holds the visitor's answer to the analytics banner. The
// banner script writes it; the server only reads it.
const ConsentCookie = "analytics_consent"

// Consent cookie values.
const (
	ConsentGranted = "granted"
	ConsentDenied  = "denied"
)

// HasConsent reports whether r carries a granted consent cookie.
func HasConsent(r *http.Request) bool {
	ck, err := r.Cookie(ConsentCookie)
	return err == nil && ck.Value == ConsentGranted
}
