// Package generation defines the boundary between the application core and
// the external vision/text generation service. It abstracts the details of
// the LLM API integration (Gemini), exposing the capability as two narrow
// operations: extracting teaching text from an image and producing a JSON
// document constrained by a schema descriptor. The application never couples
// to a specific provider.
package generation
