package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/studysnap/studysnap-api/internal/config"
	"github.com/studysnap/studysnap-api/internal/generation"
	"google.golang.org/genai"
)

// Generator implements the generation.Generator interface using Google's
// Gemini API.
type Generator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string
}

// compile-time check that Generator satisfies the boundary interface
var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a new Gemini-backed Generator with the provided
// dependencies. Returns an error if the configuration is invalid or the
// client cannot be initialized.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger: logger,
		config: cfg,
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// ExtractText analyzes an image and returns the teaching text it contains.
// The sentinel error payload the extraction prompt asks for is detected here
// and reported as a tagged unprocessable outcome rather than as text, so no
// caller ever has to probe raw output for error shapes.
func (g *Generator) ExtractText(
	ctx context.Context,
	image []byte,
	mimeType string,
) (*generation.ExtractionOutcome, error) {
	if len(image) == 0 {
		return nil, generation.ErrEmptyImage
	}

	parts := []*genai.Part{
		genai.NewPartFromText(extractionPrompt),
		genai.NewPartFromBytes(image, mimeType),
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.config.ExtractionTemperature),
	}

	text, err := g.callWithRetry(ctx, parts, genCfg)
	if err != nil {
		return nil, err
	}

	if payload, ok := parseSentinel(text); ok {
		g.logger.InfoContext(ctx, "capability rejected image as unprocessable",
			"message_length", len(payload.Message))
		return &generation.ExtractionOutcome{
			Unprocessable: true,
			Message:       payload.Message,
		}, nil
	}

	return &generation.ExtractionOutcome{Text: text}, nil
}

// GenerateJSON sends the prompt to the model constrained by the given schema
// and returns the raw JSON document it produced.
func (g *Generator) GenerateJSON(
	ctx context.Context,
	prompt string,
	schema *generation.Schema,
) (json.RawMessage, error) {
	if prompt == "" {
		return nil, generation.ErrEmptyPrompt
	}

	parts := []*genai.Part{genai.NewPartFromText(prompt)}

	genCfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(g.config.GenerationTemperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenAISchema(schema),
	}

	text, err := g.callWithRetry(ctx, parts, genCfg)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(text), nil
}

// callWithRetry makes a call to the Gemini API with exponential backoff
// retry logic. It attempts the call up to MaxRetries+1 times, backing off
// with jitter between attempts for transient errors. Permanent errors (like
// content blocked by safety filters or an empty response) are returned
// immediately without retrying. Each attempt is bounded by the configured
// request timeout.
func (g *Generator) callWithRetry(
	ctx context.Context,
	parts []*genai.Part,
	genCfg *genai.GenerateContentConfig,
) (string, error) {
	maxRetries := g.config.MaxRetries
	baseDelaySeconds := g.config.RetryDelaySeconds
	if baseDelaySeconds < 1 {
		baseDelaySeconds = 2
	}

	timeout := time.Duration(g.config.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		attemptNum := attempt + 1
		g.logger.DebugContext(ctx, "making Gemini API call",
			"attempt", attemptNum,
			"max_attempts", maxRetries+1)

		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		resp, err := g.client.Models.GenerateContent(attemptCtx, g.model, contents, genCfg)
		cancel()

		text, err := g.extractResponseText(resp, err)
		if err == nil {
			g.logger.DebugContext(ctx, "Gemini API call successful",
				"attempt", attemptNum,
				"response_length", len(text))
			return text, nil
		}

		lastErr = err
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"attempt", attemptNum,
			"error", err)

		// Permanent errors are not worth retrying.
		if errors.Is(err, generation.ErrContentBlocked) || errors.Is(err, generation.ErrInvalidResponse) {
			return "", err
		}

		// A caller-cancelled context ends the whole operation.
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: %w", generation.ErrTransientFailure, ctx.Err())
		}

		if attempt >= maxRetries {
			break
		}

		// delay = baseDelay * 2^attempt * (0.5 + rand(0, 0.5))
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitterFactor := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitterFactor * float64(time.Second))

		g.logger.InfoContext(ctx, "retrying Gemini API call after delay",
			"attempt", attemptNum,
			"delay", delay)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %w", generation.ErrTransientFailure, ctx.Err())
		}
	}

	return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d): %w",
		generation.ErrTransientFailure, maxRetries, lastErr)
}

// extractResponseText validates a Gemini response and concatenates its text
// parts. API transport errors pass through unchanged so the retry loop can
// treat them as transient; structural problems with the response map to
// permanent errors.
func (g *Generator) extractResponseText(resp *genai.GenerateContentResponse, callErr error) (string, error) {
	if callErr != nil {
		return "", callErr
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: generation stopped by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	text := ""
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}

	if text == "" {
		return "", fmt.Errorf("%w: response contained no text", generation.ErrInvalidResponse)
	}

	return text, nil
}
