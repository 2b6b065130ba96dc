package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleQuote = `"Pain is inevitable. Suffering is optional." - Haruki Murakami, Blood and Wine, 2005`

func TestValidateFreeQuote(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "well-formed quote passes",
			content: sampleQuote,
			wantErr: false,
		},
		{
			name:    "surrounding whitespace is trimmed",
			content: "\n  " + sampleQuote + "  \n",
			wantErr: false,
		},
		{
			name:    "shorter than 50 characters",
			content: `"Know thyself." - Socrates, Apology`,
			wantErr: true,
		},
		{
			name:    "multi-byte quote shorter than 50 characters",
			content: `"` + strings.Repeat("é", 30) + `" - Weil, Gravity`,
			wantErr: true,
		},
		{
			name:    "multi-byte quote of at least 50 characters",
			content: `"千里之行，始於足下。大器晚成，大音希聲。知人者智，自知者明。勝人者有力，自勝者強。知足者富。" - Laozi, Tao Te Ching`,
			wantErr: false,
		},
		{
			name:    "missing opening double-quote",
			content: `Pain is inevitable. Suffering is optional. - Haruki Murakami, Blood and Wine`,
			wantErr: true,
		},
		{
			name:    "only one double-quote character",
			content: `"Pain is inevitable. Suffering is optional. - Haruki Murakami, Blood and Wine`,
			wantErr: true,
		},
		{
			name:    "missing attribution separator",
			content: `"The unexamined life is not worth living for a human being." Socrates, Apology, 399 BC`,
			wantErr: true,
		},
		{
			name:    "empty content",
			content: "",
			wantErr: true,
		},
		{
			name:    "prose without quote structure",
			content: "Here is a wonderful quote about suffering that you might enjoy reading today.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := ValidateFreeQuote(tt.content)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsMalformed(err))
				assert.Empty(t, quote)
			} else {
				require.NoError(t, err)
				assert.Equal(t, strings.TrimSpace(tt.content), quote)
			}
		})
	}
}

func TestFilterQuoteList(t *testing.T) {
	valid1 := `"The obstacle is the way." - Marcus Aurelius, Meditations`
	valid2 := `"Man is condemned to be free." - Jean-Paul Sartre, Being and Nothingness, 1943`

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "all lines valid",
			content: valid1 + "\n" + valid2,
			want:    []string{valid1, valid2},
		},
		{
			name:    "blank lines and padding dropped",
			content: "\n  " + valid1 + "  \n\n\t" + valid2 + "\n",
			want:    []string{valid1, valid2},
		},
		{
			name:    "bad lines dropped silently",
			content: valid1 + "\nnot a quote at all\n" + valid2,
			want:    []string{valid1, valid2},
		},
		{
			name:    "attribution without comma dropped",
			content: `"Short but sweet." - Anonymous` + "\n" + valid1,
			want:    []string{valid1},
		},
		{
			name:    "line without opening quote dropped",
			content: `The obstacle is the way." - Marcus Aurelius, Meditations`,
			want:    []string{},
		},
		{
			name:    "empty survivor set is still valid",
			content: "nothing\nuseful\nhere",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterQuoteList(tt.content)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Re-validating an already-filtered list must return the same list unchanged.
func TestFilterQuoteList_Idempotent(t *testing.T) {
	content := `"The obstacle is the way." - Marcus Aurelius, Meditations
garbage line
"Man is condemned to be free." - Jean-Paul Sartre, Being and Nothingness, 1943

"No comma here." - Nobody`

	first := FilterQuoteList(content)
	second := FilterQuoteList(strings.Join(first, "\n"))

	assert.Equal(t, first, second)
}

func TestValidateStructuredSet(t *testing.T) {
	catalog := CatalogSnapshot{Titles: []string{"Meditations", "The Republic"}}

	t.Run("canonicalizes book title casing", func(t *testing.T) {
		content := `[{"quote": "Waste no more time arguing what a good man should be. Be one.",
			"philosopher": "Marcus Aurelius", "book_title": "meditations", "publication_year": "180"}]`

		records, err := ValidateStructuredSet(content, catalog)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Meditations", records[0].BookTitle)
		assert.Equal(t, "Marcus Aurelius", records[0].Philosopher)
		assert.Equal(t, "180", records[0].PublicationYear)
	})

	t.Run("title absent from catalog aborts the batch", func(t *testing.T) {
		content := `[
			{"quote": "Waste no more time arguing what a good man should be. Be one.",
			 "philosopher": "Marcus Aurelius", "book_title": "meditations", "publication_year": "180"},
			{"quote": "The beginning is the most important part of the work.",
			 "philosopher": "Plato", "book_title": "Republic", "publication_year": ""}
		]`

		records, err := ValidateStructuredSet(content, catalog)
		require.Error(t, err)
		assert.True(t, IsMalformed(err))
		assert.Contains(t, err.Error(), "book not found in catalog: Republic")
		assert.Nil(t, records)
	})

	t.Run("missing required field aborts the batch", func(t *testing.T) {
		content := `[{"quote": "  ", "philosopher": "Plato", "book_title": "The Republic"}]`

		_, err := ValidateStructuredSet(content, catalog)
		require.Error(t, err)
		assert.True(t, IsMalformed(err))
		assert.Contains(t, err.Error(), `missing required field "quote"`)
	})

	t.Run("blank publication year is allowed", func(t *testing.T) {
		content := `[{"quote": "The beginning is the most important part of the work.",
			"philosopher": "Plato", "book_title": "the republic", "publication_year": ""}]`

		records, err := ValidateStructuredSet(content, catalog)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "The Republic", records[0].BookTitle)
		assert.Empty(t, records[0].PublicationYear)
	})

	t.Run("not a JSON array", func(t *testing.T) {
		_, err := ValidateStructuredSet(`{"quote": "x"}`, catalog)
		require.Error(t, err)
		assert.True(t, IsMalformed(err))
		assert.Contains(t, err.Error(), "not parseable as JSON array")
	})

	t.Run("prose around the array is rejected", func(t *testing.T) {
		_, err := ValidateStructuredSet("Here are your quotes:\n[]", catalog)
		require.Error(t, err)
		assert.True(t, IsMalformed(err))
	})
}

func TestCatalogSnapshot_CanonicalTitle(t *testing.T) {
	catalog := CatalogSnapshot{Titles: []string{"The Republic", "Tao Te Ching"}}

	title, ok := catalog.CanonicalTitle("the republic")
	assert.True(t, ok)
	assert.Equal(t, "The Republic", title)

	title, ok = catalog.CanonicalTitle("TAO TE CHING")
	assert.True(t, ok)
	assert.Equal(t, "Tao Te Ching", title)

	_, ok = catalog.CanonicalTitle("Beyond Good and Evil")
	assert.False(t, ok)
}
