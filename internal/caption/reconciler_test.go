package caption

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func wordAt(text string, start, end float64) Word {
	return Word{Text: text, Start: floatPtr(start), End: floatPtr(end), Score: floatPtr(0.9)}
}

// Scenario 1: replacement collapses "sage maker" into "SageMaker".
func TestReconcileSegmentMultiWordCollapse(t *testing.T) {
	seg := Segment{
		Start: 0, End: 1.0,
		Words: []Word{
			wordAt("sage", 0.0, 0.3),
			wordAt("maker", 0.3, 0.6),
			wordAt("rocks", 0.6, 1.0),
		},
	}

	ReconcileSegment(&seg, []string{"SageMaker", "rocks"})

	assert.Equal(t, "SageMaker rocks", seg.Text)
	assert.Len(t, seg.Words, 2)

	assert.Equal(t, "SageMaker", seg.Words[0].Text)
	assert.Equal(t, 0.0, *seg.Words[0].Start)
	assert.Equal(t, 0.6, *seg.Words[0].End)
	assert.Nil(t, seg.Words[0].Score)

	assert.Equal(t, "rocks", seg.Words[1].Text)
	assert.Equal(t, 0.6, *seg.Words[1].Start)
	assert.Equal(t, 1.0, *seg.Words[1].End)
}

// Scenario 2: "set the um main execution" -> "set the min execution".
func TestReconcileSegmentFillerRemovalAndSwap(t *testing.T) {
	seg := Segment{
		Start: 0, End: 2.0,
		Words: []Word{
			wordAt("set", 0.0, 0.2),
			wordAt("the", 0.2, 0.4),
			wordAt("um", 0.4, 0.6),
			wordAt("main", 0.6, 1.0),
			wordAt("execution", 1.0, 1.5),
		},
	}

	ReconcileSegment(&seg, []string{"set", "the", "min", "execution"})

	assert.Equal(t, "set the min execution", seg.Text)
	assert.Len(t, seg.Words, 4)
	assert.Equal(t, "min", seg.Words[2].Text)
	assert.Equal(t, "execution", seg.Words[3].Text)
	// "min" absorbs the "um"/"main" span's timing; execution keeps its own end.
	assert.Equal(t, 1.5, *seg.Words[3].End)
}

func TestReconcileSegmentNoWordsArray(t *testing.T) {
	seg := Segment{Start: 0, End: 1}
	ReconcileSegment(&seg, []string{"hello", "world"})
	assert.Equal(t, "hello world", seg.Text)
	assert.Empty(t, seg.Words)
}

func TestReconcileSegmentSameLengthPreservesTiming(t *testing.T) {
	seg := Segment{
		Words: []Word{wordAt("hello", 0, 0.5), wordAt("there", 0.5, 1.0)},
	}
	ReconcileSegment(&seg, []string{"Hello", "There"})
	assert.Equal(t, "Hello There", seg.Text)
	assert.Equal(t, 0.0, *seg.Words[0].Start)
	assert.Equal(t, 0.5, *seg.Words[0].End)
	assert.NotNil(t, seg.Words[0].Score) // untouched on the same-length path
}

func TestReconcileSegmentIsIdempotent(t *testing.T) {
	seg := Segment{
		Words: []Word{
			wordAt("sage", 0.0, 0.3),
			wordAt("maker", 0.3, 0.6),
			wordAt("rocks", 0.6, 1.0),
		},
	}
	patched := []string{"SageMaker", "rocks"}

	ReconcileSegment(&seg, patched)
	first := append([]Word(nil), seg.Words...)

	ReconcileSegment(&seg, patched)
	assert.Equal(t, first, seg.Words)
}

func TestReconcileSegmentNilWordsWithSegmentTiming(t *testing.T) {
	seg := Segment{Start: 5.0, End: 6.0}
	seg.Words = nil
	ReconcileSegment(&seg, []string{"brand", "new"})
	assert.Equal(t, "brand new", seg.Text)
}
