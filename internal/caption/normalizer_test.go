package caption

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func speakerWord(text string, start, end float64, speaker string) Word {
	return Word{Text: text, Start: floatPtr(start), End: floatPtr(end), Speaker: strPtr(speaker)}
}

// Scenario 3: speaker-change split.
func TestNormalizeSegmentsSpeakerChangeSplit(t *testing.T) {
	tr := Transcript{Segments: []Segment{{
		Text: "I agree. That's right.",
		Words: []Word{
			speakerWord("I", 0.0, 0.2, "Alice"),
			speakerWord("agree.", 0.2, 0.6, "Alice"),
			speakerWord("That's", 0.6, 0.9, "Bob"),
			speakerWord("right.", 0.9, 1.3, "Bob"),
		},
	}}}

	cfg := DefaultNormalizationConfig()
	stats := NormalizeSegments(&tr, cfg)

	assert.Equal(t, 1, stats.Splits)
	assert.Len(t, tr.Segments, 2)
	assert.Equal(t, "Alice", *tr.Segments[0].Speaker)
	assert.Equal(t, "I agree.", tr.Segments[0].Text)
	assert.Equal(t, "Bob", *tr.Segments[1].Speaker)
	assert.Equal(t, "That's right.", tr.Segments[1].Text)
}

func TestNormalizeSegmentsPassthroughWhenDisabled(t *testing.T) {
	tr := Transcript{Segments: []Segment{{Text: "hello", Words: []Word{{Text: "hello"}}}}}
	cfg := DefaultNormalizationConfig()
	cfg.Normalize = false

	stats := NormalizeSegments(&tr, cfg)
	assert.Equal(t, NormalizationStats{}, stats)
	assert.Len(t, tr.Segments, 1)
}

func TestNormalizeSegmentsPassthroughWithoutWords(t *testing.T) {
	tr := Transcript{Segments: []Segment{{Text: "no words here"}}}
	NormalizeSegments(&tr, DefaultNormalizationConfig())
	assert.Len(t, tr.Segments, 1)
	assert.Equal(t, "no words here", tr.Segments[0].Text)
}

func TestNormalizeSegmentsHardWordLimit(t *testing.T) {
	var words []Word
	for i := 0; i < 25; i++ {
		words = append(words, Word{Text: "word"})
	}
	tr := Transcript{Segments: []Segment{{Words: words}}}

	cfg := DefaultNormalizationConfig()
	cfg.SplitSegmentAtSpeakerChange = false
	cfg.MaxCharsPerSegment = 10000 // only word-count limit active
	NormalizeSegments(&tr, cfg)

	for _, seg := range tr.Segments {
		assert.LessOrEqual(t, len(seg.Words), cfg.MaxWordsPerSegment)
	}
	total := 0
	for _, seg := range tr.Segments {
		total += len(seg.Words)
	}
	assert.Equal(t, 25, total)
}

func TestNormalizeSegmentsSingleOversizedWordKeepsOwnSegment(t *testing.T) {
	tr := Transcript{Segments: []Segment{{
		Words: []Word{{Text: "supercalifragilisticexpialidocious"}, {Text: "ok"}},
	}}}
	cfg := DefaultNormalizationConfig()
	cfg.MaxCharsPerSegment = 10
	cfg.SplitSegmentAtSpeakerChange = false

	NormalizeSegments(&tr, cfg)

	assert.GreaterOrEqual(t, len(tr.Segments), 2)
	assert.Equal(t, "supercalifragilisticexpialidocious", tr.Segments[0].Text)
}
