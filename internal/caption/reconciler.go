package caption

// ReconcileSegment applies a new word sequence (patchedWords) to seg, in
// place, reshaping per-word timing, speaker, and score so that timing stays
// monotone and confined to the segment's envelope. This is the hardest
// algorithm in the core; see spec.md §4.4 for the full rationale.
//
// Three paths:
//   - Fast path: seg has no words — only seg.Text is rebuilt.
//   - Same length: word count is unchanged — texts are overwritten in place,
//     timing/speaker/score untouched.
//   - General case: a word-level diff against the original texts drives a
//     KEEP/REMOVE/ADD walk that builds a new word list.
//
// ReconcileSegment is deterministic and idempotent: calling it twice with
// the same patchedWords produces the same result (the second call always
// lands on the same-length path, since the word count after the first call
// already equals len(patchedWords)).
func ReconcileSegment(seg *Segment, patchedWords []string) {
	if len(seg.Words) == 0 {
		seg.Text = ReconstructText(patchedWords)
		return
	}

	if len(seg.Words) == len(patchedWords) {
		for i := range seg.Words {
			seg.Words[i].Text = patchedWords[i]
		}
		seg.Text = ReconstructText(patchedWords)
		return
	}

	origTexts := make([]string, len(seg.Words))
	for i, w := range seg.Words {
		origTexts[i] = w.Text
	}
	ops := ComputeDiff(origTexts, patchedWords)

	var newList []Word
	var pending *Word // buffers timing for REMOVEs preceding the first surviving word

	for _, op := range ops {
		switch op.Kind {
		case OpKeep:
			w := seg.Words[op.OrigIdx]
			w.Text = op.Word
			if pending != nil {
				w.Start = pending.Start
				w.Score = nil
				pending = nil
			}
			newList = append(newList, w)

		case OpRemove:
			removed := seg.Words[op.OrigIdx]
			if len(newList) > 0 {
				last := &newList[len(newList)-1]
				if removed.End != nil {
					last.End = removed.End
				}
				last.Score = nil
			} else if pending == nil {
				cp := removed
				pending = &cp
			} else if removed.End != nil {
				pending.End = removed.End
			}

		case OpAdd:
			newList = append(newList, addedWord(op.Word, seg, newList, &pending))
		}
	}

	seg.Words = newList
	seg.Text = ReconstructText(patchedWords)
}

// addedWord builds the Word record for an ADD operation per the timing
// policy in spec.md §4.4: split the previous surviving word's remaining
// duration when one exists with valid timing, otherwise inherit the
// pendingRemoval buffer, otherwise fall back to a zero-duration sentinel at
// the segment's start.
func addedWord(text string, seg *Segment, newList []Word, pending **Word) Word {
	nw := Word{Text: text, Score: nil}

	if len(newList) > 0 {
		prev := &newList[len(newList)-1]
		if prev.HasTiming() {
			mid := (*prev.Start + *prev.End) / 2
			nw.Start = floatPtr(mid)
			nw.End = floatPtr(*prev.End)
			prev.End = floatPtr(mid)
			nw.Speaker = prev.Speaker
			return nw
		}
	}

	if *pending != nil {
		p := *pending
		nw.Start = p.Start
		nw.End = p.End
		nw.Speaker = p.Speaker
		*pending = nil
		return nw
	}

	nw.Start = floatPtr(seg.Start)
	nw.End = floatPtr(seg.Start)
	return nw
}
