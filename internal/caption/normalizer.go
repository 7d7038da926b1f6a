package caption

import "sort"

// NormalizationStats summarizes the distribution of the normalizer's output.
type NormalizationStats struct {
	Splits   int
	MinWords int
	MaxWords int
	AvgWords float64
	P95Words int
	MinChars int
	MaxChars int
	AvgChars float64
	P95Chars int
}

// NormalizeSegments splits every segment that has a non-empty words array
// into 1..N caption-sized segments per cfg, in place. Segments without a
// words array pass through unchanged. When cfg.Normalize is false, the
// transcript is untouched and a zero-value stats record is returned.
func NormalizeSegments(t *Transcript, cfg NormalizationConfig) NormalizationStats {
	if !cfg.Normalize {
		return NormalizationStats{}
	}

	var result []Segment
	var wordCounts, charCounts []int
	splits := 0

	for _, seg := range t.Segments {
		if len(seg.Words) == 0 {
			result = append(result, seg)
			continue
		}

		split := splitSegment(seg, cfg)
		if len(split) > 1 {
			splits += len(split) - 1
		}
		for _, s := range split {
			result = append(result, s)
			wordCounts = append(wordCounts, len(s.Words))
			charCounts = append(charCounts, len([]rune(s.Text)))
		}
	}

	t.Segments = result
	stats := distribution(wordCounts, charCounts)
	stats.Splits = splits
	return stats
}

// splitSegment performs the single left-to-right accumulator pass described
// in spec.md §4.7: speaker-change flush, hard-limit flush, append, then a
// soft punctuation flush once accumulated progress crosses the threshold.
func splitSegment(seg Segment, cfg NormalizationConfig) []Segment {
	var segments []Segment
	var cur []Word
	var curSpeaker *string

	flush := func() {
		if len(cur) == 0 {
			return
		}
		segments = append(segments, buildSegment(cur, curSpeaker))
		cur = nil
		curSpeaker = nil
	}

	for i, w := range seg.Words {
		if cfg.SplitSegmentAtSpeakerChange && len(cur) > 0 && speakerChanged(w.Speaker, curSpeaker) {
			flush()
		}

		newWords := len(cur) + 1
		newChars := charsLen(cur)
		if len(cur) > 0 {
			newChars++
		}
		newChars += len([]rune(w.Text))

		if len(cur) > 0 && (newWords > cfg.MaxWordsPerSegment || newChars > cfg.MaxCharsPerSegment) {
			flush()
		}

		cur = append(cur, w)
		if w.Speaker != nil {
			curSpeaker = w.Speaker
		}

		if i != len(seg.Words)-1 {
			chars := float64(charsLen(cur))
			words := float64(len(cur))
			progress := chars / float64(cfg.MaxCharsPerSegment)
			if wp := words / float64(cfg.MaxWordsPerSegment); wp > progress {
				progress = wp
			}
			if progress >= cfg.PunctuationSplitThreshold && endsWithPunctuation(w.Text, cfg.PunctuationChars) {
				flush()
			}
		}
	}
	flush()
	return segments
}

func speakerChanged(w, cur *string) bool {
	if w == nil || cur == nil {
		return false
	}
	return *w != *cur
}

func charsLen(words []Word) int {
	if len(words) == 0 {
		return 0
	}
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	return len([]rune(ReconstructText(texts)))
}

func endsWithPunctuation(text string, chars []rune) bool {
	if text == "" {
		return false
	}
	last := []rune(text)
	tail := last[len(last)-1]
	for _, c := range chars {
		if c == tail {
			return true
		}
	}
	return false
}

func buildSegment(words []Word, speaker *string) Segment {
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	seg := Segment{
		Text:    ReconstructText(texts),
		Speaker: speaker,
		Words:   append([]Word(nil), words...),
	}
	if words[0].Start != nil {
		seg.Start = *words[0].Start
	}
	if last := words[len(words)-1]; last.End != nil {
		seg.End = *last.End
	}
	return seg
}

func distribution(wordCounts, charCounts []int) NormalizationStats {
	var s NormalizationStats
	s.MinWords, s.MaxWords, s.AvgWords, s.P95Words = summarize(wordCounts)
	s.MinChars, s.MaxChars, s.AvgChars, s.P95Chars = summarize(charCounts)
	return s
}

func summarize(values []int) (min, max int, avg float64, p95 int) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	min, max = sorted[0], sorted[len(sorted)-1]

	sum := 0
	for _, v := range sorted {
		sum += v
	}
	avg = float64(sum) / float64(len(sorted))

	idx := int(float64(len(sorted))*0.95 + 0.999999)
	idx--
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	p95 = sorted[idx]
	return
}
