package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
	Upload UploadConfig `mapstructure:"upload" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all settings for the vision/text generation service.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`

	// ExtractionTemperature is used for the image extraction call; a low
	// value keeps extraction faithful to the source. GenerationTemperature
	// applies to the text-to-artifact stages.
	ExtractionTemperature float32 `mapstructure:"extraction_temperature" validate:"gte=0,lte=2"`
	GenerationTemperature float32 `mapstructure:"generation_temperature" validate:"gte=0,lte=2"`

	// RequestTimeoutSeconds bounds a single capability call. On expiry the
	// stage reports a timeout failure instead of blocking the request.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`

	// MaxRetries and RetryDelaySeconds control bounded retry with
	// exponential backoff for transient capability faults.
	MaxRetries        int `mapstructure:"max_retries"         validate:"gte=0"`
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"gte=0"`
}

// StoreConfig selects and sizes the content store backend.
type StoreConfig struct {
	// Backend is "memory" (bounded LRU, process lifetime) or "postgres".
	Backend string `mapstructure:"backend" validate:"required,oneof=memory postgres"`

	// Capacity is the entry-count bound for the memory backend.
	Capacity int `mapstructure:"capacity" validate:"required,gt=0"`

	// PostgresURL is required when Backend is "postgres".
	PostgresURL string `mapstructure:"postgres_url" validate:"required_if=Backend postgres,omitempty,url"`
}

// UploadConfig bounds incoming image uploads.
type UploadConfig struct {
	MaxBytes         int64    `mapstructure:"max_bytes"          validate:"required,gt=0"`
	AllowedMIMETypes []string `mapstructure:"allowed_mime_types" validate:"required,min=1"`
}
