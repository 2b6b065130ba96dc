// Package domain contains core business entities and rules.
package domain

import "strings"

// Format identifies the structural contract expected of generated content.
type Format int

const (
	// FormatFreeQuote is a single quote line: "[QUOTE]" - NAME, SOURCE, YEAR.
	FormatFreeQuote Format = iota

	// FormatQuoteList is several independent quote lines, one per line.
	FormatQuoteList

	// FormatStructuredSet is a JSON array of quote records constrained to
	// a book catalog.
	FormatStructuredSet

	// FormatFreeform is prose (HTML-flavored) returned without validation.
	FormatFreeform
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatFreeQuote:
		return "free-quote"
	case FormatQuoteList:
		return "quote-list"
	case FormatStructuredSet:
		return "structured-set"
	case FormatFreeform:
		return "freeform"
	default:
		return "unknown"
	}
}

// QuoteRecord is a structured quote tied to a catalog book.
// BookTitle carries the catalog's canonical casing once the record has
// passed validation.
type QuoteRecord struct {
	Quote           string `json:"quote"`
	Philosopher     string `json:"philosopher"`
	BookTitle       string `json:"book_title"`
	PublicationYear string `json:"publication_year,omitempty"`
	PurchaseLink    string `json:"purchase_link,omitempty"`
}

// CatalogSnapshot is the ordered list of permitted book titles at the time
// of a single structured-generation call. It is fetched fresh per call and
// never cached across requests, so its staleness window is one request.
type CatalogSnapshot struct {
	Titles []string
}

// CanonicalTitle returns the catalog's canonical casing for title, matched
// case-insensitively. The second return reports whether the title exists
// in the catalog at all.
func (c CatalogSnapshot) CanonicalTitle(title string) (string, bool) {
	for _, t := range c.Titles {
		if strings.EqualFold(t, title) {
			return t, true
		}
	}

	return "", false
}
