package caption

import "strings"

// collectAllCues walks every segment in order, updating previousSpeaker once
// per segment (never once per cue), and returns the flattened cue stream
// shared by the VTT and SRT renderers.
func collectAllCues(t Transcript, cfg CaptionsConfig) []cue {
	var all []cue
	var previousSpeaker *string
	for _, seg := range t.Segments {
		all = append(all, buildCues(seg, cfg, previousSpeaker)...)
		speaker := effectiveSpeaker(seg)
		previousSpeaker = &speaker
	}
	return all
}

// RenderVTT renders t as a WebVTT document per spec.md §4.8: a "WEBVTT"
// header followed by one or more cues, blank-line separated.
func RenderVTT(t Transcript, cfg CaptionsConfig) string {
	cues := collectAllCues(t, cfg)
	if len(cues) == 0 {
		return "WEBVTT\n"
	}

	blocks := make([]string, len(cues))
	for i, c := range cues {
		blocks[i] = formatVttTs(c.Start) + " --> " + formatVttTs(c.End) + "\n" + c.Text
	}

	var b strings.Builder
	b.WriteString("WEBVTT\n\n")
	b.WriteString(strings.Join(blocks, "\n\n"))
	b.WriteString("\n")
	return b.String()
}
