package caption

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Scenario 1 end-to-end through the replacement engine.
func TestApplyReplacementsLiteralMultiWordCollapse(t *testing.T) {
	tr := Transcript{Segments: []Segment{{
		Start: 0, End: 1.0,
		Words: []Word{
			wordAt("sage", 0.0, 0.3),
			wordAt("maker", 0.3, 0.6),
			wordAt("rocks", 0.6, 1.0),
		},
	}}}

	stats := ApplyReplacements(&tr, []ReplacementRule{
		{Type: RuleLiteral, Search: "sage maker", Replacement: "SageMaker"},
	})

	assert.Equal(t, 1, stats.SegmentsModified)
	assert.Equal(t, 1, stats.RuleCounts["sage maker->SageMaker"])
	assert.Equal(t, "SageMaker rocks", tr.Segments[0].Text)
	assert.Len(t, tr.Segments[0].Words, 2)
}

func TestApplyReplacementsRegexRule(t *testing.T) {
	tr := Transcript{Segments: []Segment{{
		Words: []Word{wordAt("gonna", 0, 0.2), wordAt("go", 0.2, 0.4)},
	}}}

	stats := ApplyReplacements(&tr, []ReplacementRule{
		{Type: RuleRegex, Search: `gonna`, Replacement: "going to"},
	})

	assert.Equal(t, 1, stats.SegmentsModified)
	assert.Equal(t, 1, stats.RuleCounts["r'gonna'->going to"])
	assert.Equal(t, "going to go", tr.Segments[0].Text)
}

func TestApplyReplacementsNoMatchLeavesSegmentUntouched(t *testing.T) {
	tr := Transcript{Segments: []Segment{{
		Words: []Word{wordAt("hello", 0, 0.2)},
	}}}

	stats := ApplyReplacements(&tr, []ReplacementRule{
		{Type: RuleLiteral, Search: "xyz", Replacement: "abc"},
	})

	assert.Equal(t, 0, stats.SegmentsModified)
	assert.Equal(t, "hello", tr.Segments[0].Text)
}

func TestApplyReplacementsIsIndependentOfSegmentOrder(t *testing.T) {
	rules := []ReplacementRule{{Type: RuleLiteral, Search: "um", Replacement: ""}}

	segA := Segment{Words: []Word{wordAt("hello", 0, 0.2), wordAt("um", 0.2, 0.3)}}
	segB := Segment{Words: []Word{wordAt("world", 0, 0.2)}}

	tr1 := Transcript{Segments: []Segment{segA, segB}}
	tr2 := Transcript{Segments: []Segment{segB, segA}}

	ApplyReplacements(&tr1, rules)
	ApplyReplacements(&tr2, rules)

	assert.Equal(t, tr1.Segments[0].Text, tr2.Segments[1].Text)
	assert.Equal(t, tr1.Segments[1].Text, tr2.Segments[0].Text)
}

func TestCompileRulesSkipsInvalidRegex(t *testing.T) {
	compiled := CompileRules([]ReplacementRule{
		{Type: RuleRegex, Search: "(unterminated", Replacement: "x"},
		{Type: RuleLiteral, Search: "a", Replacement: "b"},
	})
	assert.Len(t, compiled, 1)
}
