// Package service contains the study generation pipeline. It orchestrates
// the schema-bound generation stages (extraction, summary, explanations,
// quiz, notes) over the content store, translating every capability fault,
// malformed response, or schema violation into a small closed set of typed
// failures. No exception-style error ever crosses this boundary: callers
// receive an artifact or one of StageError, ImageUnprocessableError, or
// ErrTextNotFound.
package service
