package caption

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipelineRunWithoutLLM(t *testing.T) {
	tr := Transcript{Segments: []Segment{{
		Start: 0, End: 1.0,
		Words: []Word{wordAt("sage", 0, 0.3), wordAt("maker", 0.3, 0.6), wordAt("rocks", 0.6, 1.0)},
	}}}

	p := NewPipeline(
		WithReplacementRules([]ReplacementRule{{Type: RuleLiteral, Search: "sage maker", Replacement: "SageMaker"}}),
	)

	result, err := p.Run(context.Background(), tr)
	assert.NoError(t, err)
	assert.Nil(t, result.Refinement)
	assert.Equal(t, 1, result.Replacement.SegmentsModified)
	assert.Equal(t, "SageMaker rocks", result.Transcript.Segments[0].Text)
	assert.NotEmpty(t, result.Captions.VTT)
	assert.NotEmpty(t, result.Captions.SRT)
	assert.NotEmpty(t, result.Captions.JSON)
}

func TestPipelineRunWithLLM(t *testing.T) {
	tr := Transcript{Segments: []Segment{{
		Words: []Word{wordAt("hello", 0, 0.3)},
	}}}

	invoke := func(ctx context.Context, body string) (string, error) {
		return `{"updates": [{"idx": 0, "text": "hi there"}]}`, nil
	}

	p := NewPipeline(WithLLMRefinement(LLMRefinementConfig{
		SuggestionValidation: DefaultSuggestionValidationConfig(),
	}, invoke))

	result, err := p.Run(context.Background(), tr)
	assert.NoError(t, err)
	assert.NotNil(t, result.Refinement)
	assert.Equal(t, 1, result.Refinement.SegmentsUpdated)
}

func TestUniversalInvariantTextMatchesWords(t *testing.T) {
	tr := Transcript{Segments: []Segment{{
		Words: []Word{wordAt("a", 0, 0.1), wordAt("b", 0.1, 0.2), wordAt("c", 0.2, 0.3)},
	}}}
	p := NewPipeline(WithReplacementRules([]ReplacementRule{{Type: RuleLiteral, Search: "b", Replacement: "bee"}}))

	result, err := p.Run(context.Background(), tr)
	assert.NoError(t, err)

	for _, seg := range result.Transcript.Segments {
		if len(seg.Words) == 0 {
			continue
		}
		texts := make([]string, len(seg.Words))
		for i, w := range seg.Words {
			texts[i] = w.Text
		}
		assert.Equal(t, ReconstructText(texts), seg.Text)
	}
}
