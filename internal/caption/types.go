// Package caption implements the post-transcription refinement core: word-aligned
// reconciliation, rule-based replacement, LLM-driven refinement, segment
// normalization, and VTT/SRT/JSON caption rendering.
package caption

// Word is an atomic transcript token. Start/End are seconds, nil when timing
// is unknown. Score is a confidence value in [0,1]; nil means "adjusted" —
// the word's text was touched by a mutation and its original confidence no
// longer applies. A word's Text includes any trailing punctuation.
type Word struct {
	Text    string
	Start   *float64
	End     *float64
	Speaker *string
	Score   *float64
}

// HasTiming reports whether both Start and End are present and form a valid
// non-negative-duration range.
func (w Word) HasTiming() bool {
	return w.Start != nil && w.End != nil && *w.End >= *w.Start
}

// Segment is an ordered, non-empty sequence of words sharing a time range.
// Text is derivative of Words when Words is non-empty: after any
// reconciliation step Text must equal the space-joined concatenation of
// Words[*].Text. End == 0 indicates an invalid/unknown segment end.
type Segment struct {
	Start   float64
	End     float64
	Text    string
	Speaker *string
	Words   []Word
}

// HasValidRange reports whether the segment's own [Start,End] is usable for
// rendering purposes (End > 0 and End > Start).
func (s Segment) HasValidRange() bool {
	return s.End > 0 && s.End > s.Start
}

// Transcript is an ordered sequence of segments.
type Transcript struct {
	Segments []Segment
}

// RuleType discriminates a ReplacementRule.
type RuleType string

const (
	RuleLiteral RuleType = "literal"
	RuleRegex   RuleType = "regex"
)

// ReplacementRule is a tagged union: either a literal substring substitution
// or a regex substitution, applied over a segment's concatenated word text.
type ReplacementRule struct {
	Type        RuleType
	Search      string
	Replacement string
}

// SuggestionValidationConfig holds the thresholds the Validator applies to a
// proposed rewrite.
type SuggestionValidationConfig struct {
	Enabled                   bool
	MaxWordChangeRatio        float64
	MaxNormalizedEditDistance float64
	MaxConsecutiveChanges     int
	MinWordsForRatioCheck     int
}

// DefaultSuggestionValidationConfig returns the spec-mandated defaults.
func DefaultSuggestionValidationConfig() SuggestionValidationConfig {
	return SuggestionValidationConfig{
		Enabled:                   true,
		MaxWordChangeRatio:        0.4,
		MaxNormalizedEditDistance: 0.5,
		MaxConsecutiveChanges:     3,
		MinWordsForRatioCheck:     5,
	}
}

// HighlightStyle names the tag used to wrap the current word in a highlight cue.
type HighlightStyle string

const (
	HighlightUnderline HighlightStyle = "underline"
	HighlightBold      HighlightStyle = "bold"
	HighlightItalic    HighlightStyle = "italic"
)

// SpeakerPrefixMode controls when a "Speaker: " prefix is emitted on a cue.
type SpeakerPrefixMode string

const (
	SpeakerPrefixNever       SpeakerPrefixMode = "never"
	SpeakerPrefixAlways      SpeakerPrefixMode = "always"
	SpeakerPrefixWhenChanges SpeakerPrefixMode = "when-changes"
)

// CaptionsConfig selects which caption formats to emit and how to render them.
type CaptionsConfig struct {
	GenerateVTT         bool
	GenerateSRT         bool
	GenerateJSON        bool
	HighlightWords      bool
	HighlightWith       HighlightStyle
	IncludeSpeakerNames SpeakerPrefixMode
}

// DefaultCaptionsConfig returns a reasonable all-formats default.
func DefaultCaptionsConfig() CaptionsConfig {
	return CaptionsConfig{
		GenerateVTT:         true,
		GenerateSRT:         true,
		GenerateJSON:        true,
		HighlightWords:      true,
		HighlightWith:       HighlightUnderline,
		IncludeSpeakerNames: SpeakerPrefixWhenChanges,
	}
}

// NormalizationConfig controls how segments are split into caption-sized units.
type NormalizationConfig struct {
	MaxCharsPerSegment          int
	MaxWordsPerSegment          int
	SplitSegmentAtSpeakerChange bool
	PunctuationSplitThreshold   float64
	PunctuationChars            []rune
	Normalize                   bool
}

// DefaultNormalizationConfig returns the spec-mandated defaults.
func DefaultNormalizationConfig() NormalizationConfig {
	return NormalizationConfig{
		MaxCharsPerSegment:          48,
		MaxWordsPerSegment:          10,
		SplitSegmentAtSpeakerChange: true,
		PunctuationSplitThreshold:   0.7,
		PunctuationChars:            []rune{'.', ',', '?', '!', ';', ':'},
		Normalize:                   true,
	}
}

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
