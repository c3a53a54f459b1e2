// Package gemini implements the generation.Generator interface using
// Google's Gemini API. It handles vision extraction with sentinel-error
// detection, schema-constrained JSON generation, per-call timeouts, and
// bounded retry with exponential backoff for transient faults.
package gemini
