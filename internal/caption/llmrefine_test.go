package caption

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeInvoker(reply string, err error) LLMInvoker {
	return func(ctx context.Context, requestBody string) (string, error) {
		return reply, err
	}
}

func TestRefineWithLLMAppliesValidatedUpdate(t *testing.T) {
	tr := Transcript{Segments: []Segment{{
		Words: []Word{wordAt("sage", 0, 0.3), wordAt("maker", 0.3, 0.6), wordAt("rocks", 0.6, 1.0)},
	}}}

	reply := `{"identifiedSpeakers": {}, "updates": [{"idx": 0, "text": "SageMaker rocks"}]}`
	stats := RefineWithLLM(context.Background(), &tr, LLMRefinementConfig{
		SuggestionValidation: DefaultSuggestionValidationConfig(),
	}, fakeInvoker(reply, nil))

	assert.Equal(t, 1, stats.SegmentsUpdated)
	assert.Len(t, stats.AppliedUpdates, 1)
	assert.Equal(t, "SageMaker rocks", tr.Segments[0].Text)
}

func TestRefineWithLLMIgnoresNoChangeUpdate(t *testing.T) {
	tr := Transcript{Segments: []Segment{{Words: []Word{wordAt("hello", 0, 0.2)}}}}
	reply := `{"updates": [{"idx": 0, "text": "hello"}]}`

	stats := RefineWithLLM(context.Background(), &tr, LLMRefinementConfig{
		SuggestionValidation: DefaultSuggestionValidationConfig(),
	}, fakeInvoker(reply, nil))

	assert.Equal(t, 0, stats.SegmentsUpdated)
	assert.Len(t, stats.IgnoredSuggestions, 1)
	assert.Equal(t, ReasonNoChange, stats.IgnoredSuggestions[0].Reason)
}

func TestRefineWithLLMIgnoresRejectedRewrite(t *testing.T) {
	tr := Transcript{Segments: []Segment{{
		Text: "So default in Lambda, that would be a one-to-one ratio",
		Words: func() []Word {
			words := []string{"So", "default", "in", "Lambda,", "that", "would", "be", "a", "one-to-one", "ratio"}
			out := make([]Word, len(words))
			for i, w := range words {
				out[i] = wordAt(w, float64(i), float64(i)+0.5)
			}
			return out
		}(),
	}}}
	reply := `{"updates": [{"idx": 0, "text": "So you can have up to 64 concurrent invocations"}]}`

	stats := RefineWithLLM(context.Background(), &tr, LLMRefinementConfig{
		SuggestionValidation: DefaultSuggestionValidationConfig(),
	}, fakeInvoker(reply, nil))

	assert.Equal(t, 0, stats.SegmentsUpdated)
	assert.Len(t, stats.IgnoredSuggestions, 1)
	assert.Equal(t, ReasonWordChangeRatio, stats.IgnoredSuggestions[0].Reason)
}

func TestRefineWithLLMSpeakerRemap(t *testing.T) {
	label := "SPEAKER_00"
	tr := Transcript{Segments: []Segment{{
		Speaker: &label,
		Words:   []Word{{Text: "hi", Speaker: &label}},
	}}}
	reply := `{"identifiedSpeakers": {"SPEAKER_00": "Luciano"}, "updates": []}`

	stats := RefineWithLLM(context.Background(), &tr, LLMRefinementConfig{
		SuggestionValidation: DefaultSuggestionValidationConfig(),
	}, fakeInvoker(reply, nil))

	assert.Equal(t, 1, stats.SpeakersIdentified)
	assert.Equal(t, "Luciano", *tr.Segments[0].Speaker)
	assert.Equal(t, "Luciano", *tr.Segments[0].Words[0].Speaker)
}

func TestRefineWithLLMUnparseableReplyIsNonFatal(t *testing.T) {
	tr := Transcript{Segments: []Segment{{Words: []Word{wordAt("hi", 0, 0.2)}}}}
	stats := RefineWithLLM(context.Background(), &tr, LLMRefinementConfig{}, fakeInvoker("not json", nil))

	assert.Equal(t, 0, stats.SegmentsUpdated)
	assert.Equal(t, 0, stats.SpeakersIdentified)
	assert.Equal(t, "hi", tr.Segments[0].Words[0].Text)
}
