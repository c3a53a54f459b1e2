package generation

import (
	"context"
	"encoding/json"
)

// ExtractionOutcome is the tagged result of an image extraction. Either the
// image yielded teaching text, or the capability itself rejected it as
// unreadable or irrelevant. The decision is made inside the capability
// adapter; callers never have to guess by inspecting raw output.
type ExtractionOutcome struct {
	// Text is the extracted teaching text. Empty when Unprocessable is set.
	Text string

	// Unprocessable reports that the capability declined to process the
	// image. Message carries its user-facing reason.
	Unprocessable bool
	Message       string
}

// Generator defines the interface to the external vision/text generation
// service. This interface serves as a boundary between the application core
// and the LLM provider, following the hexagonal architecture pattern.
type Generator interface {
	// ExtractText analyzes an image and returns the teaching text it
	// contains, or an unprocessable outcome if the capability rejects the
	// image. mimeType is the image's MIME type (e.g. "image/png").
	//
	// Returns an error only for capability-level faults (transport errors,
	// safety blocks, exhausted retries); an unreadable image is a normal
	// outcome, not an error.
	ExtractText(ctx context.Context, image []byte, mimeType string) (*ExtractionOutcome, error)

	// GenerateJSON sends the prompt to the model and returns its raw JSON
	// output, constrained by the given schema descriptor. Parsing and
	// schema conformance checking happen in the caller; the generator only
	// guarantees a non-empty raw document or an error.
	GenerateJSON(ctx context.Context, prompt string, schema *Schema) (json.RawMessage, error)
}
