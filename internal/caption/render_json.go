package caption

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

type jsonSegment struct {
	SpeakerLabel string  `json:"speakerLabel"`
	Start        float64 `json:"start"`
	End          float64 `json:"end"`
	Text         string  `json:"text"`
}

type jsonBundle struct {
	Speakers map[string]string `json:"speakers"`
	Segments []jsonSegment     `json:"segments"`
}

// RenderJSON renders t as the simplified JSON caption form: every distinct
// speaker label (segment- or word-level) is collected, sorted
// lexicographically, and mapped to short keys spk_0, spk_1, ...; an empty
// label set is seeded with "SPEAKER_00" so the output is never speakerless.
func RenderJSON(t Transcript, cfg CaptionsConfig) string {
	labels := collectSpeakerLabels(t)
	keyOf := make(map[string]string, len(labels))
	speakers := make(map[string]string, len(labels))
	for i, label := range labels {
		key := "spk_" + strconv.Itoa(i)
		keyOf[label] = key
		speakers[key] = label
	}

	segments := make([]jsonSegment, len(t.Segments))
	for i, seg := range t.Segments {
		segments[i] = jsonSegment{
			SpeakerLabel: keyOf[effectiveSpeaker(seg)],
			Start:        seg.Start,
			End:          seg.End,
			Text:         strings.TrimSpace(seg.Text),
		}
	}

	out, _ := json.MarshalIndent(jsonBundle{Speakers: speakers, Segments: segments}, "", "  ")
	return string(out)
}

func collectSpeakerLabels(t Transcript) []string {
	seen := make(map[string]struct{})
	for _, seg := range t.Segments {
		seen[effectiveSpeaker(seg)] = struct{}{}
		if seg.Speaker != nil {
			seen[*seg.Speaker] = struct{}{}
		}
		for _, w := range seg.Words {
			if w.Speaker != nil {
				seen[*w.Speaker] = struct{}{}
			}
		}
	}
	if len(seen) == 0 {
		seen[defaultSpeakerLabel] = struct{}{}
	}

	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}
