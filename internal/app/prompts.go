package app

import (
	"fmt"
	"strings"
)

// Prompt templates for the generation endpoint. Building a prompt is pure
// and deterministic: the same inputs always produce the same instruction
// text, so prompt content is testable without touching the network.

const freeQuotePromptTemplate = `You are a knowledgeable assistant specializing in philosophy. Your task is to provide a relevant quote from a philosopher based on the following question or topic:

"%s"

Please strictly follow these guidelines:

1. Read the user's question or topic.
2. Select a relevant quote from a philosopher or thinker.
3. The quote must be an actual excerpt from the philosopher's or thinker's original work (e.g., book, essay, lecture) and attributed correctly to both the philosopher and the work.
4. If the quote is attributed correctly to a philosopher but the exact work where the quote is excerpted cannot be verified or found, find a new, correctly attributed quote.
5. Choose philosophers and thinkers from various cultural backgrounds (e.g., Western, Eastern, African, Indigenous, etc.)
6. Format your response EXACTLY as follows:
   "[QUOTE]" - PHILOSOPHER NAME, SOURCE, PUBLISHED YEAR (if known)
7. Do not add any text before or after this format.
8. Do not explain, interpret, or comment on the quote.
9. Keep the quote within 100 words.
10. Longer quotes are more favorable.

Failure to follow this format exactly will be considered an error.`

const quoteListPromptTemplate = `You are a knowledgeable assistant specializing in philosophy. Your task is to provide %d relevant quotes from philosophers based on the following question or topic:

"%s"

Please strictly follow these guidelines:

1. Read the user's question or topic.
2. Select relevant quotes from philosophers and thinkers of various cultural backgrounds (e.g., Western, Eastern, African, Indigenous, etc.)
3. Each quote must be correctly attributed to both the philosopher and the work.
4. Format EACH quote on its own line, EXACTLY as follows:
   "[QUOTE]" - PHILOSOPHER NAME, SOURCE, PUBLISHED YEAR (if known)
5. Do not add any text before, between, or after the quotes.
6. Do not explain, interpret, or comment on the quotes.
7. Keep each quote within 100 words.

Failure to follow this format exactly will be considered an error.`

const structuredPromptTemplate = `You are a knowledgeable assistant specializing in philosophy. Your task is to provide relevant quotes based on the following question or topic:

"%s"

Every quote MUST be excerpted from one of the following books, and from no other source:

%s

Please strictly follow these guidelines:

1. Read the user's question or topic.
2. Select quotes only from the books listed above, attributed correctly.
3. Respond with a raw JSON array and nothing else. Each element must be an object with these fields:
   "quote", "philosopher", "book_title", "publication_year"
4. "book_title" must exactly name one of the listed books. "publication_year" may be an empty string if unknown.
5. Do not wrap the JSON in markdown fences and do not add any text before or after it.
6. Keep each quote within 100 words.

Failure to follow this format exactly will be considered an error.`

const learnMorePromptHeader = `Analyze the following quote and provide detailed information about it, the author, and its relevance to the user's question:

`

const learnMorePromptBody = `
When providing information, use a conversational and engaging tone, as if you're explaining the topic to someone who is genuinely curious and seeking guidance. Make it feel personal and reflective, as if you understand the user's situation. Avoid rigid, academic language. Here's what to include:

1. About The Author:
   - Provide a brief biography of the author.
   - Focus on what makes them relatable or interesting. Make the philosopher feel like a real person, not just a historical figure.
   - Keep this section within 50 words.

2. About The Work:
   - Provide a simple, relatable overview of the mentioned work.
   - Mention the work's significance in the author's career and in the broader field of philosophy, in a way that invites curiosity.
   - Limit to 100 words.

3. How This Quote Speaks to Your Question:
   - Describe where in the mentioned work this quote is excerpted from (if known).
   - Explain the quote's meaning in everyday terms.
   - Show empathy by connecting its wisdom directly to the user's life situation.
   - Keep this section within 100 words.

Use HTML tags for headings and paragraphs but focus on making the content feel human, relatable, and insightful. Use HTML tags to bold each heading and number them, too.`

// BuildQuotePrompt returns the instruction text for a single free-form quote.
func BuildQuotePrompt(question string) string {
	return fmt.Sprintf(freeQuotePromptTemplate, question)
}

// BuildQuoteListPrompt returns the instruction text for a list of count quotes.
func BuildQuoteListPrompt(question string, count int) string {
	return fmt.Sprintf(quoteListPromptTemplate, count, question)
}

// BuildStructuredQuotePrompt returns the instruction text for
// catalog-constrained structured quotes. The title list is embedded in
// catalog order so the prompt stays deterministic for a given snapshot.
func BuildStructuredQuotePrompt(question string, titles []string) string {
	var list strings.Builder
	for _, title := range titles {
		list.WriteString("- ")
		list.WriteString(title)
		list.WriteString("\n")
	}

	return fmt.Sprintf(structuredPromptTemplate, question, strings.TrimRight(list.String(), "\n"))
}

// LearnMoreInput carries the fields of a learn-more request. Two variants
// exist: full attribution (Philosopher, Source, optional Year) or a single
// freeform AuthorInfo blob. Quote and UserQuestion are always present.
type LearnMoreInput struct {
	Quote        string
	Philosopher  string
	Source       string
	Year         string
	AuthorInfo   string
	UserQuestion string
}

// BuildLearnMorePrompt returns the instruction text for explanatory prose
// about a quote. The attribution block adapts to whichever request variant
// supplied the author information.
func BuildLearnMorePrompt(in LearnMoreInput) string {
	var b strings.Builder
	b.WriteString(learnMorePromptHeader)
	fmt.Fprintf(&b, "Quote: \"%s\"\n", in.Quote)

	if in.AuthorInfo != "" {
		fmt.Fprintf(&b, "Author Information: %s\n", in.AuthorInfo)
	} else {
		fmt.Fprintf(&b, "Author: %s\n", in.Philosopher)

		if in.Year != "" {
			fmt.Fprintf(&b, "Source: %s (%s)\n", in.Source, in.Year)
		} else {
			fmt.Fprintf(&b, "Source: %s\n", in.Source)
		}
	}

	fmt.Fprintf(&b, "User's Question: \"%s\"\n", in.UserQuestion)
	b.WriteString(learnMorePromptBody)

	return b.String()
}
