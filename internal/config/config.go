// Package config loads and validates the pipeline configuration: the
// replacement rules, LLM refinement settings, suggestion-validation
// thresholds, normalization limits, and caption output flags that the core
// (internal/caption) trusts once parsed and defaulted.
package config

import "captionforge/internal/caption"

// LogLevel is a validated server log level.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is one of the recognized log levels.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	default:
		return false
	}
}

// ServerConfig holds the HTTP API's own settings; none of this is consumed
// by the core itself.
type ServerConfig struct {
	Port             int      `mapstructure:"port"`
	LogLevel         LogLevel `mapstructure:"log_level"`
	JWTSigningSecret string   `mapstructure:"jwt_signing_secret"`
}

// LLMConfig selects and configures the LLM invocation adapter. Credential
// handling and vendor identity are collaborator concerns (spec.md §1); the
// core only ever sees the resulting LLMInvoker function.
type LLMConfig struct {
	Provider                  string  `mapstructure:"provider"` // "noop" or "http"
	Endpoint                  string  `mapstructure:"endpoint"`
	APIKey                    string  `mapstructure:"api_key"`
	Model                     string  `mapstructure:"model"`
	MaxTokens                 int     `mapstructure:"max_tokens"`
	Temperature               float64 `mapstructure:"temperature"`
	BedrockInferenceProfileID string  `mapstructure:"bedrock_inference_profile_id"`
	AdditionalContext         string  `mapstructure:"additional_context"`
}

// StoreConfig configures run-history persistence (internal/store).
type StoreConfig struct {
	SqlitePath string `mapstructure:"sqlite_path"`
}

// PipelineConfig is the full, validated configuration the pipeline,
// HTTP API, and CLI are built from.
type PipelineConfig struct {
	Server               ServerConfig                       `mapstructure:"server"`
	Store                StoreConfig                        `mapstructure:"store"`
	ReplacementRules     []caption.ReplacementRule          `mapstructure:"replacement_rules"`
	LLM                  LLMConfig                          `mapstructure:"llm_refinement"`
	SuggestionValidation caption.SuggestionValidationConfig `mapstructure:"suggestion_validation"`
	Normalization        caption.NormalizationConfig        `mapstructure:"normalization"`
	Captions             caption.CaptionsConfig             `mapstructure:"captions"`
}

// Default returns a PipelineConfig with every sub-config's documented
// defaults and the LLM stage disabled ("noop" provider).
func Default() PipelineConfig {
	return PipelineConfig{
		Server:               ServerConfig{Port: 8080, LogLevel: LogInfo},
		Store:                StoreConfig{SqlitePath: "captionforge.db"},
		LLM:                  LLMConfig{Provider: "noop", Model: "gpt-4o", MaxTokens: 2048, Temperature: 0.2},
		SuggestionValidation: caption.DefaultSuggestionValidationConfig(),
		Normalization:        caption.DefaultNormalizationConfig(),
		Captions:             caption.DefaultCaptionsConfig(),
	}
}
