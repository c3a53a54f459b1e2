package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when a generation call fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate content")

	// ErrInvalidResponse is returned when the model response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that might resolve on retry
	ErrTransientFailure = errors.New("transient error during generation")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyPrompt is returned when a generation call is made without a prompt
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrEmptyImage is returned when an extraction call is made without image data
	ErrEmptyImage = errors.New("image data cannot be empty")
)
