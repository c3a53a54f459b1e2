package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/studysnap/studysnap-api/internal/generation"
)

// runStage performs one schema-bound generation call: it invokes the
// capability once, parses the raw output as JSON into target, and checks
// conformance through the target's Validate method. Every possible fault is
// translated into a StageError here; this is the sole point where untrusted
// model output becomes a closed set of outcomes.
func runStage(
	ctx context.Context,
	gen generation.Generator,
	logger *slog.Logger,
	stage string,
	prompt string,
	schema *generation.Schema,
	target interface{ Validate() error },
) error {
	// Generation ID correlates the log lines of a single stage invocation.
	generationID := uuid.New()

	logger.DebugContext(ctx, "running generation stage",
		"stage", stage,
		"generation_id", generationID.String(),
		"prompt_length", len(prompt))

	raw, err := gen.GenerateJSON(ctx, prompt, schema)
	if err != nil {
		reason := ReasonCapability
		if errors.Is(err, context.DeadlineExceeded) {
			reason = ReasonTimeout
		}

		logger.ErrorContext(ctx, "generation stage capability call failed",
			"stage", stage,
			"generation_id", generationID.String(),
			"reason", reason,
			"error", err)
		return &StageError{Stage: stage, Reason: reason, Err: err}
	}

	// Strict decode: unknown fields are a schema violation by the
	// capability, not data to silently drop.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		logger.ErrorContext(ctx, "generation stage returned unparseable output",
			"stage", stage,
			"generation_id", generationID.String(),
			"error", err)
		return &StageError{Stage: stage, Reason: ReasonBadJSON, Err: err}
	}

	if err := target.Validate(); err != nil {
		logger.ErrorContext(ctx, "generation stage output failed validation",
			"stage", stage,
			"generation_id", generationID.String(),
			"error", err)
		return &StageError{Stage: stage, Reason: ReasonSchema, Err: err}
	}

	logger.InfoContext(ctx, "generation stage completed",
		"stage", stage,
		"generation_id", generationID.String())

	return nil
}
