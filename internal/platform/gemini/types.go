package gemini

import (
	"encoding/json"
	"strings"

	"github.com/studysnap/studysnap-api/internal/generation"
	"google.golang.org/genai"
)

// sentinelErrorCode is the error value the model is instructed to emit when
// an image cannot be processed as study material.
const sentinelErrorCode = "IMAGE_PROCESSING_ERROR"

// sentinelPayload is the exact shape of the unprocessable-image sentinel.
type sentinelPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// parseSentinel checks whether raw extraction output is the sentinel error
// payload. The check is best-effort: ordinary extracted text that happens to
// parse as JSON with an unrelated shape is not a sentinel and falls through
// to normal processing.
func parseSentinel(raw string) (*sentinelPayload, bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}

	var payload sentinelPayload
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return nil, false
	}

	if payload.Error != sentinelErrorCode {
		return nil, false
	}

	return &payload, true
}

// toGenAISchema translates a provider-neutral schema descriptor into the
// genai structured-output schema.
func toGenAISchema(s *generation.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        toGenAIType(s.Type),
		Description: s.Description,
		Required:    s.Required,
		Enum:        s.Enum,
		Items:       toGenAISchema(s.Items),
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenAISchema(prop)
		}
	}

	return out
}

// toGenAIType maps schema descriptor types onto genai types.
func toGenAIType(t generation.SchemaType) genai.Type {
	switch t {
	case generation.TypeObject:
		return genai.TypeObject
	case generation.TypeArray:
		return genai.TypeArray
	case generation.TypeString:
		return genai.TypeString
	case generation.TypeInteger:
		return genai.TypeInteger
	case generation.TypeBoolean:
		return genai.TypeBoolean
	default:
		return genai.TypeUnspecified
	}
}
