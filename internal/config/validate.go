package config

import (
	"errors"
	"fmt"

	"captionforge/internal/caption"
)

// Validate checks cfg for a coherent set of values, returning a joined error
// listing every problem found rather than failing on the first one. This is
// the declarative schema layer spec.md §9 calls for at the config boundary;
// the core trusts a validated PipelineConfig thereafter.
func Validate(cfg *PipelineConfig) error {
	var errs []error

	if cfg.Server.LogLevel != "" && !cfg.Server.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("server.log_level %q is invalid; valid values: debug, info, warn, error", cfg.Server.LogLevel))
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range [1,65535]", cfg.Server.Port))
	}

	for i, rule := range cfg.ReplacementRules {
		prefix := fmt.Sprintf("replacement_rules[%d]", i)
		if rule.Type != caption.RuleLiteral && rule.Type != caption.RuleRegex {
			errs = append(errs, fmt.Errorf("%s.type %q is invalid; valid values: literal, regex", prefix, rule.Type))
		}
		if rule.Search == "" {
			errs = append(errs, fmt.Errorf("%s.search is required", prefix))
		}
	}

	switch cfg.LLM.Provider {
	case "", "noop":
	case "http":
		if cfg.LLM.Endpoint == "" {
			errs = append(errs, errors.New("llm_refinement.endpoint is required when provider is \"http\""))
		}
	default:
		errs = append(errs, fmt.Errorf("llm_refinement.provider %q is invalid; valid values: noop, http", cfg.LLM.Provider))
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		errs = append(errs, fmt.Errorf("llm_refinement.temperature %.2f is out of range [0,2]", cfg.LLM.Temperature))
	}

	sv := cfg.SuggestionValidation
	if sv.MaxWordChangeRatio < 0 || sv.MaxWordChangeRatio > 1 {
		errs = append(errs, fmt.Errorf("suggestion_validation.max_word_change_ratio %.2f is out of range [0,1]", sv.MaxWordChangeRatio))
	}
	if sv.MaxNormalizedEditDistance < 0 || sv.MaxNormalizedEditDistance > 1 {
		errs = append(errs, fmt.Errorf("suggestion_validation.max_normalized_edit_distance %.2f is out of range [0,1]", sv.MaxNormalizedEditDistance))
	}
	if sv.MaxConsecutiveChanges < 0 {
		errs = append(errs, errors.New("suggestion_validation.max_consecutive_changes must be >= 0"))
	}

	n := cfg.Normalization
	if n.MaxCharsPerSegment <= 0 {
		errs = append(errs, errors.New("normalization.max_chars_per_segment must be > 0"))
	}
	if n.MaxWordsPerSegment <= 0 {
		errs = append(errs, errors.New("normalization.max_words_per_segment must be > 0"))
	}
	if n.PunctuationSplitThreshold < 0 || n.PunctuationSplitThreshold > 1 {
		errs = append(errs, fmt.Errorf("normalization.punctuation_split_threshold %.2f is out of range [0,1]", n.PunctuationSplitThreshold))
	}

	c := cfg.Captions
	switch c.HighlightWith {
	case "", caption.HighlightUnderline, caption.HighlightBold, caption.HighlightItalic:
	default:
		errs = append(errs, fmt.Errorf("captions.highlight_with %q is invalid; valid values: underline, bold, italic", c.HighlightWith))
	}
	switch c.IncludeSpeakerNames {
	case "", caption.SpeakerPrefixNever, caption.SpeakerPrefixAlways, caption.SpeakerPrefixWhenChanges:
	default:
		errs = append(errs, fmt.Errorf("captions.include_speaker_names %q is invalid; valid values: never, always, when-changes", c.IncludeSpeakerNames))
	}

	return errors.Join(errs...)
}
