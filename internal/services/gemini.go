package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"alfredoptarigan/resume-gap/internal/logger"
)

// TextGenerator sends a prompt to a generative model and returns its raw text.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type GeminiService interface {
	TextGenerator
	Model() string
}

// GenerationError reports a failed call to the model provider. Transport,
// authentication and provider-side failures all surface as this type.
type GenerationError struct {
	Model string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate text with %s: %v", e.Model, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

var errEmptyResponse = errors.New("model returned no text content")

// contentGenerator is the part of *genai.Models used by geminiService.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiService struct {
	models     contentGenerator
	modelName  string
	logger     *zap.Logger
	maxPreview int
}

// NewGeminiService creates the Gemini client once; the returned service is
// safe for concurrent use and holds no per-request state.
func NewGeminiService(ctx context.Context, apiKey, model string, log *zap.Logger, maxPreview int) (GeminiService, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	model = strings.TrimSpace(model)
	if model == "" {
		return nil, errors.New("gemini model is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		models:     client.Models,
		modelName:  model,
		logger:     logger.WithAIFields(log, "gemini", model),
		maxPreview: maxPreview,
	}, nil
}

// GenerateText implements TextGenerator. It performs exactly one request and
// never retries.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.Preview(prompt, g.maxPreview)),
	)

	resp, err := g.models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		g.logger.Error("gemini api error", zap.Error(err))
		return "", &GenerationError{Model: g.modelName, Err: err}
	}

	if resp == nil {
		return "", &GenerationError{Model: g.modelName, Err: errEmptyResponse}
	}

	raw := resp.Text()
	if raw == "" {
		g.logger.Warn("gemini response has no text", zap.Int("candidates", len(resp.Candidates)))
		return "", &GenerationError{Model: g.modelName, Err: errEmptyResponse}
	}

	// whitespace-only text is returned as "" and handled as unusable output
	text := strings.TrimSpace(raw)

	g.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(text)),
		zap.String("response_preview", logger.Preview(text, g.maxPreview)),
	)

	return text, nil
}

func (g *geminiService) Model() string {
	return g.modelName
}
