package dto

import "strings"

// QuoteRequest is the body for the quote generation endpoints.
type QuoteRequest struct {
	Query string `json:"query" validate:"required,notempty"`
}

// LearnMoreRequest is the body for the learn-more endpoints. Two attribution
// variants are accepted: structured (Philosopher + Source, optionally Year)
// or a free-text AuthorInfo line. Year stays a string because callers send
// values like "c. 170 AD".
type LearnMoreRequest struct {
	Quote        string `json:"quote" validate:"required,notempty"`
	Philosopher  string `json:"philosopher"`
	Source       string `json:"source"`
	Year         string `json:"year"`
	AuthorInfo   string `json:"authorInfo"`
	UserQuestion string `json:"userQuestion" validate:"required,notempty"`
}

// MissingFields lists required fields absent from the request, in a stable
// order suitable for diagnostic messages.
func (r *LearnMoreRequest) MissingFields() []string {
	var missing []string

	if strings.TrimSpace(r.Quote) == "" {
		missing = append(missing, "quote")
	}

	if strings.TrimSpace(r.AuthorInfo) == "" {
		if strings.TrimSpace(r.Philosopher) == "" {
			missing = append(missing, "philosopher")
		}
		if strings.TrimSpace(r.Source) == "" {
			missing = append(missing, "source")
		}
	}

	if strings.TrimSpace(r.UserQuestion) == "" {
		missing = append(missing, "userQuestion")
	}

	return missing
}

// SubscribeRequest is the body for the mailing list endpoints.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// QuoteResponse is the success body for free-quote generation.
type QuoteResponse struct {
	Quote string `json:"quote"`
}

// QuoteListResponse is the success body for list and structured generation.
type QuoteListResponse struct {
	Quotes any `json:"quotes"`
}

// ContentResponse is the success body for learn-more generation.
type ContentResponse struct {
	Content string `json:"content"`
}
