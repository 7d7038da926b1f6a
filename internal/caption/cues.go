package caption

import "strings"

// cue is one time-coded caption line, shared by the VTT and SRT renderers
// (which differ only in timestamp punctuation, header, and cue numbering).
type cue struct {
	Start, End float64
	Text       string
}

// buildCues renders one segment into one or more cues per cfg. previousSpeaker
// is read (not written) here; callers update it once per segment, never once
// per cue, per spec.md §4.8.
func buildCues(seg Segment, cfg CaptionsConfig, previousSpeaker *string) []cue {
	speaker := effectiveSpeaker(seg)
	prefix := speakerPrefix(speaker, previousSpeaker, cfg.IncludeSpeakerNames)

	if !cfg.HighlightWords || len(seg.Words) == 0 {
		return []cue{{
			Start: seg.Start,
			End:   seg.End,
			Text:  prefix + escapeHtml(strings.TrimSpace(seg.Text)),
		}}
	}

	return buildHighlightCues(seg, prefix, cfg)
}

// buildHighlightCues implements spec.md §4.8's highlight-mode walk: evenly
// distribute missing timing across a valid envelope, locate the first timed
// word, then walk emitting a filler cue over any internal gap and a
// highlighted cue over every timed word. Words without valid timing never
// receive their own cue but remain visible in neighboring cues' full text.
func buildHighlightCues(seg Segment, prefix string, cfg CaptionsConfig) []cue {
	words := distributeTiming(seg)

	firstIdx := -1
	for i, w := range words {
		if w.HasTiming() {
			firstIdx = i
			break
		}
	}
	if firstIdx < 0 {
		return nil
	}

	plainTexts := make([]string, len(words))
	for i, w := range words {
		plainTexts[i] = escapeHtml(w.Text)
	}
	unhighlighted := prefix + strings.Join(plainTexts, " ")
	open, closeTag := highlightTag(cfg.HighlightWith)

	var cues []cue
	var lastEnd float64
	started := false

	for i := firstIdx; i < len(words); i++ {
		w := words[i]
		if !w.HasTiming() {
			continue
		}
		if started && *w.Start > lastEnd {
			cues = append(cues, cue{Start: lastEnd, End: *w.Start, Text: unhighlighted})
		}

		parts := make([]string, len(plainTexts))
		copy(parts, plainTexts)
		parts[i] = open + plainTexts[i] + closeTag
		cues = append(cues, cue{Start: *w.Start, End: *w.End, Text: prefix + strings.Join(parts, " ")})

		lastEnd = *w.End
		started = true
	}

	if seg.HasValidRange() && seg.End > lastEnd {
		cues = append(cues, cue{Start: lastEnd, End: seg.End, Text: unhighlighted})
	}

	return cues
}

// distributeTiming returns a copy of seg.Words with evenly-spaced timing
// filled in for any word missing it, but only when the segment itself has a
// valid envelope. Words that already carry timing are left untouched.
func distributeTiming(seg Segment) []Word {
	words := append([]Word(nil), seg.Words...)
	if !seg.HasValidRange() {
		return words
	}

	allTimed := true
	for _, w := range words {
		if !w.HasTiming() {
			allTimed = false
			break
		}
	}
	if allTimed {
		return words
	}

	n := len(words)
	step := (seg.End - seg.Start) / float64(n)
	for i := range words {
		if words[i].HasTiming() {
			continue
		}
		s := seg.Start + float64(i)*step
		words[i].Start = floatPtr(s)
		words[i].End = floatPtr(s + step)
	}
	return words
}
