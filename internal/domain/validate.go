package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// minQuoteLength is the minimum length of a well-formed free quote in
// characters, including the quotation marks and attribution.
const minQuoteLength = 50

// attributionSeparator separates the quoted text from its attribution.
const attributionSeparator = " - "

// ValidateFreeQuote checks a single generated quote against the free-quote
// contract and returns the trimmed text on success:
//   - at least 50 characters after trimming
//   - starts with a double-quote character
//   - contains at least two double-quote characters in total
//   - contains the literal " - " separating quote from attribution
//
// The rules are conservative on purpose: this is the sole gate between
// free-text model output and end users, so ambiguity is rejected.
func ValidateFreeQuote(content string) (string, error) {
	quote := strings.TrimSpace(content)

	// Character count, not bytes: quotes from non-Latin sources are the
	// norm here, and multi-byte text must not get a shorter bar.
	if utf8.RuneCountInString(quote) < minQuoteLength {
		return "", NewMalformedError("invalid quote format or length")
	}

	if !strings.HasPrefix(quote, `"`) || strings.Count(quote, `"`) < 2 {
		return "", NewMalformedError("invalid quote format or length")
	}

	if !strings.Contains(quote, attributionSeparator) {
		return "", NewMalformedError("invalid quote format or length")
	}

	return quote, nil
}

// FilterQuoteList splits content on newlines and keeps the lines that
// independently satisfy the per-line quote contract: start with a
// double-quote, contain `" -` exactly once so the line splits into two
// segments, and carry a comma in the attribution segment (philosopher,
// source). Failing lines are dropped silently rather than failing the
// whole batch: multiple quotes in one response are not correlated
// failures, so partial salvage beats all-or-nothing.
//
// The surviving set preserves input order and may be empty; the caller
// decides whether an empty result is itself an error. The function is
// idempotent on its own output.
func FilterQuoteList(content string) []string {
	lines := strings.Split(content, "\n")
	quotes := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isValidQuoteLine(line) {
			quotes = append(quotes, line)
		}
	}

	return quotes
}

// isValidQuoteLine checks one line against the per-line quote contract.
func isValidQuoteLine(line string) bool {
	if !strings.HasPrefix(line, `"`) {
		return false
	}

	parts := strings.Split(line, `" -`)
	if len(parts) != 2 {
		return false
	}

	return strings.Contains(parts[1], ",")
}

// structuredRecord is the wire shape of a record inside the model's JSON
// array. Kept separate from QuoteRecord so validation controls what is
// let through.
type structuredRecord struct {
	Quote           string `json:"quote"`
	Philosopher     string `json:"philosopher"`
	BookTitle       string `json:"book_title"`
	PublicationYear string `json:"publication_year"`
	PurchaseLink    string `json:"purchase_link"`
}

// ValidateStructuredSet parses content as a JSON array of quote records and
// cross-checks every record against the catalog. Unlike the list mode, a
// single bad record aborts the whole batch: the records were requested as
// one coherent catalog-constrained set, so a hallucinated field or title
// taints the response.
//
// On success every record's BookTitle is rewritten to the catalog's
// canonical casing.
func ValidateStructuredSet(content string, catalog CatalogSnapshot) ([]QuoteRecord, error) {
	var raw []structuredRecord
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &raw); err != nil {
		return nil, NewMalformedError("not parseable as JSON array")
	}

	records := make([]QuoteRecord, 0, len(raw))

	for i, r := range raw {
		if err := checkStructuredFields(i, r); err != nil {
			return nil, err
		}

		canonical, ok := catalog.CanonicalTitle(strings.TrimSpace(r.BookTitle))
		if !ok {
			return nil, NewMalformedError("book not found in catalog: " + strings.TrimSpace(r.BookTitle))
		}

		records = append(records, QuoteRecord{
			Quote:           strings.TrimSpace(r.Quote),
			Philosopher:     strings.TrimSpace(r.Philosopher),
			BookTitle:       canonical,
			PublicationYear: strings.TrimSpace(r.PublicationYear),
			PurchaseLink:    strings.TrimSpace(r.PurchaseLink),
		})
	}

	return records, nil
}

// checkStructuredFields verifies the required fields of one record.
// The publication year may be blank; everything else must be non-blank
// after trimming.
func checkStructuredFields(index int, r structuredRecord) error {
	required := []struct {
		name  string
		value string
	}{
		{"quote", r.Quote},
		{"philosopher", r.Philosopher},
		{"book_title", r.BookTitle},
	}

	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return NewMalformedError(fmt.Sprintf("record %d missing required field %q", index, field.name))
		}
	}

	return nil
}
