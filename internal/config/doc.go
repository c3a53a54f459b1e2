// Package config handles loading and validating application configuration
// from environment variables and optional config files. All settings are
// grouped by concern (server, LLM, content store, uploads) and validated
// before the application starts.
package config
