package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	// PerfectCoverageMessage is returned instead of calling the model when no
	// keyword is missing.
	PerfectCoverageMessage = "Your resume perfectly covers all technical requirements!"

	fallbackSuggestionPrefix = "Consider adding a project involving: "
	maxFallbackKeywords      = 3

	fieldKeywords    = "keywords"
	fieldSuggestions = "suggestions"
)

// AdvisorService runs the model-backed operations. Model output that cannot
// be parsed is replaced by a fallback value; only generation failures are
// returned as errors.
type AdvisorService interface {
	ExtractKeywords(ctx context.Context, jobDescription string) ([]string, error)
	Suggest(ctx context.Context, missingKeywords []string, jobDescription, resumeText string) ([]string, error)
}

type advisorService struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	logger        *zap.Logger
}

func NewAdvisorService(generator TextGenerator, logger *zap.Logger) AdvisorService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &advisorService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		logger:        logger,
	}
}

// ExtractKeywords implements AdvisorService. An unusable model answer yields
// an empty, non-nil list.
func (a *advisorService) ExtractKeywords(ctx context.Context, jobDescription string) ([]string, error) {
	prompt := a.promptBuilder.BuildKeywordExtractionPrompt(jobDescription)

	raw, err := a.generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	keywords, ok := StringList(ParseAIJSON(raw), fieldKeywords)
	if !ok {
		a.logFallback("extract_keywords", raw)
		return []string{}, nil
	}

	return keywords, nil
}

// Suggest implements AdvisorService. With nothing missing the model is not
// called at all.
func (a *advisorService) Suggest(ctx context.Context, missingKeywords []string, jobDescription, resumeText string) ([]string, error) {
	if len(missingKeywords) == 0 {
		return []string{PerfectCoverageMessage}, nil
	}

	prompt := a.promptBuilder.BuildSuggestionPrompt(missingKeywords, jobDescription, resumeText)

	raw, err := a.generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	suggestions, ok := StringList(ParseAIJSON(raw), fieldSuggestions)
	if !ok {
		a.logFallback("suggest", raw)
		return []string{fallbackSuggestion(missingKeywords)}, nil
	}

	return suggestions, nil
}

func (a *advisorService) logFallback(task, raw string) {
	a.logger.Warn("model output not usable, returning fallback",
		zap.String("task", task),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
	)
}

func fallbackSuggestion(missingKeywords []string) string {
	n := min(len(missingKeywords), maxFallbackKeywords)
	return fallbackSuggestionPrefix + strings.Join(missingKeywords[:n], ", ")
}
