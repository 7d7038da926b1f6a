package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Load reads the YAML configuration file at path, merges it over the
// documented defaults, and returns a validated PipelineConfig.
func Load(path string) (*PipelineConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	cfg := Default()
	if err := bindDefaults(v, cfg); err != nil {
		return nil, fmt.Errorf("config: bind defaults: %w", err)
	}

	// A missing config file is not an error — callers can run entirely on
	// defaults, overridden only by env vars or flags layered on top of v.
	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %q: %w", path, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindDefaults seeds viper with cfg's zero-config defaults so that a
// partial YAML file only overrides the fields it actually sets.
func bindDefaults(v *viper.Viper, cfg PipelineConfig) error {
	v.SetDefault("server.port", cfg.Server.Port)
	v.SetDefault("server.log_level", string(cfg.Server.LogLevel))
	v.SetDefault("store.sqlite_path", cfg.Store.SqlitePath)
	v.SetDefault("llm_refinement.provider", cfg.LLM.Provider)
	v.SetDefault("llm_refinement.model", cfg.LLM.Model)
	v.SetDefault("llm_refinement.max_tokens", cfg.LLM.MaxTokens)
	v.SetDefault("llm_refinement.temperature", cfg.LLM.Temperature)
	v.SetDefault("suggestion_validation.enabled", cfg.SuggestionValidation.Enabled)
	v.SetDefault("suggestion_validation.max_word_change_ratio", cfg.SuggestionValidation.MaxWordChangeRatio)
	v.SetDefault("suggestion_validation.max_normalized_edit_distance", cfg.SuggestionValidation.MaxNormalizedEditDistance)
	v.SetDefault("suggestion_validation.max_consecutive_changes", cfg.SuggestionValidation.MaxConsecutiveChanges)
	v.SetDefault("suggestion_validation.min_words_for_ratio_check", cfg.SuggestionValidation.MinWordsForRatioCheck)
	v.SetDefault("normalization.max_chars_per_segment", cfg.Normalization.MaxCharsPerSegment)
	v.SetDefault("normalization.max_words_per_segment", cfg.Normalization.MaxWordsPerSegment)
	v.SetDefault("normalization.split_segment_at_speaker_change", cfg.Normalization.SplitSegmentAtSpeakerChange)
	v.SetDefault("normalization.punctuation_split_threshold", cfg.Normalization.PunctuationSplitThreshold)
	v.SetDefault("normalization.normalize", cfg.Normalization.Normalize)
	v.SetDefault("captions.generate_vtt", cfg.Captions.GenerateVTT)
	v.SetDefault("captions.generate_srt", cfg.Captions.GenerateSRT)
	v.SetDefault("captions.generate_json", cfg.Captions.GenerateJSON)
	v.SetDefault("captions.highlight_words", cfg.Captions.HighlightWords)
	v.SetDefault("captions.highlight_with", string(cfg.Captions.HighlightWith))
	v.SetDefault("captions.include_speaker_names", string(cfg.Captions.IncludeSpeakerNames))
	return nil
}
