// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lifestore/lifestore-api/internal/domain"
	"github.com/lifestore/lifestore-api/internal/ports"
)

// defaultListSize is the number of quotes requested in list mode.
const defaultListSize = 5

// QuoteService orchestrates quote generation use cases.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
type QuoteService struct {
	generator ports.GenerationClient
	catalog   ports.CatalogLookup
	logger    *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Generator ports.GenerationClient
	Catalog   ports.CatalogLookup
	Logger    *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Panics if Generator is nil. Catalog may be nil when structured mode is not
// deployed. Defaults logger to slog.Default() if nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Generator == nil {
		panic("QuoteService: Generator is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		generator: cfg.Generator,
		catalog:   cfg.Catalog,
		logger:    logger,
	}
}

// GenerateQuote produces a single validated quote for the user's question.
// The model's output is trusted only after it passes the free-quote
// structural contract.
func (s *QuoteService) GenerateQuote(ctx context.Context, question string) (string, error) {
	question, err := s.checkQuestion(question)
	if err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "generating quote",
		slog.String("format", domain.FormatFreeQuote.String()),
	)

	content, err := s.generator.Generate(ctx, BuildQuotePrompt(question))
	if err != nil {
		s.logger.ErrorContext(ctx, "generation failed", slog.Any("error", err))
		return "", err
	}

	quote, err := domain.ValidateFreeQuote(content)
	if err != nil {
		s.logger.WarnContext(ctx, "generated content failed validation",
			slog.Any("error", err),
			slog.Int("content_length", len(content)),
		)
		return "", err
	}

	return quote, nil
}

// GenerateQuoteList produces several independently validated quotes.
// Lines that fail the per-line contract are dropped; an entirely empty
// surviving set is treated as a malformed response, since there is nothing
// left to serve.
func (s *QuoteService) GenerateQuoteList(ctx context.Context, question string) ([]string, error) {
	question, err := s.checkQuestion(question)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "generating quote list",
		slog.String("format", domain.FormatQuoteList.String()),
	)

	content, err := s.generator.Generate(ctx, BuildQuoteListPrompt(question, defaultListSize))
	if err != nil {
		s.logger.ErrorContext(ctx, "generation failed", slog.Any("error", err))
		return nil, err
	}

	quotes := domain.FilterQuoteList(content)
	if len(quotes) == 0 {
		return nil, domain.NewMalformedError("no valid quotes in response")
	}

	s.logger.InfoContext(ctx, "generated quote list", slog.Int("count", len(quotes)))

	return quotes, nil
}

// GenerateStructuredQuotes produces catalog-constrained quote records.
// The catalog snapshot is fetched before any generation request: if the
// lookup fails there is no point spending a generation call that cannot
// be validated, so the whole operation fails fast.
func (s *QuoteService) GenerateStructuredQuotes(ctx context.Context, question string) ([]domain.QuoteRecord, error) {
	question, err := s.checkQuestion(question)
	if err != nil {
		return nil, err
	}

	if s.catalog == nil {
		return nil, domain.NewConfigurationError("catalog lookup")
	}

	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "catalog lookup failed", slog.Any("error", err))
		return nil, err
	}

	s.logger.InfoContext(ctx, "generating structured quotes",
		slog.String("format", domain.FormatStructuredSet.String()),
		slog.Int("catalog_size", len(snapshot.Titles)),
	)

	content, err := s.generator.Generate(ctx, BuildStructuredQuotePrompt(question, snapshot.Titles))
	if err != nil {
		s.logger.ErrorContext(ctx, "generation failed", slog.Any("error", err))
		return nil, err
	}

	records, err := domain.ValidateStructuredSet(content, snapshot)
	if err != nil {
		s.logger.WarnContext(ctx, "structured content failed validation", slog.Any("error", err))
		return nil, err
	}

	return records, nil
}

// ExplainQuote produces explanatory prose about a quote. The output is
// freeform HTML-flavored text and intentionally skips structural
// validation: prose is not a machine-checkable quote format.
func (s *QuoteService) ExplainQuote(ctx context.Context, in LearnMoreInput) (string, error) {
	question, err := s.checkQuestion(in.UserQuestion)
	if err != nil {
		return "", err
	}
	in.UserQuestion = question

	s.logger.InfoContext(ctx, "generating explanation",
		slog.String("format", domain.FormatFreeform.String()),
		slog.String("philosopher", in.Philosopher),
	)

	content, err := s.generator.Generate(ctx, BuildLearnMorePrompt(in))
	if err != nil {
		s.logger.ErrorContext(ctx, "generation failed", slog.Any("error", err))
		return "", err
	}

	return content, nil
}

// checkQuestion rejects a question that is empty after trimming.
// Building a prompt from an empty question is a contract violation.
func (s *QuoteService) checkQuestion(question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", domain.NewValidationError("query", "must not be empty")
	}

	return question, nil
}
