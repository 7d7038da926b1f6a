package caption

import (
	"strconv"
	"strings"
)

// RenderSRT renders t as SubRip (.srt) text: identical cue structure to VTT,
// but no header, each cue prefixed by a monotonically increasing 1-based
// index line, and comma-punctuated timestamps.
func RenderSRT(t Transcript, cfg CaptionsConfig) string {
	cues := collectAllCues(t, cfg)
	if len(cues) == 0 {
		return ""
	}

	blocks := make([]string, len(cues))
	for i, c := range cues {
		blocks[i] = strconv.Itoa(i+1) + "\n" + formatSrtTs(c.Start) + " --> " + formatSrtTs(c.End) + "\n" + c.Text
	}

	return strings.Join(blocks, "\n\n") + "\n"
}
