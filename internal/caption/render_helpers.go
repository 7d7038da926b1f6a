package caption

import (
	"fmt"
	"strings"
)

// formatVttTs formats seconds as HH:MM:SS.mmm, rounding milliseconds half-up.
func formatVttTs(s float64) string {
	h, m, sec, ms := splitClock(s)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, sec, ms)
}

// formatSrtTs formats seconds as HH:MM:SS,mmm, rounding milliseconds half-up.
func formatSrtTs(s float64) string {
	h, m, sec, ms := splitClock(s)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, sec, ms)
}

func splitClock(s float64) (h, m, sec, ms int) {
	if s < 0 {
		s = 0
	}
	totalMs := int(s*1000 + 0.5)
	ms = totalMs % 1000
	totalSec := totalMs / 1000
	sec = totalSec % 60
	totalMin := totalSec / 60
	m = totalMin % 60
	h = totalMin / 60
	return
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escapeHtml replaces &, <, > with their named entities.
func escapeHtml(text string) string {
	return htmlEscaper.Replace(text)
}

// highlightTag returns the open/close tag pair for the given highlight style.
func highlightTag(style HighlightStyle) (open, close string) {
	switch style {
	case HighlightBold:
		return "<b>", "</b>"
	case HighlightItalic:
		return "<i>", "</i>"
	default:
		return "<u>", "</u>"
	}
}

// speakerPrefix returns the "Speaker: " prefix for a cue given the speaker
// prefix mode and the previous segment's effective speaker.
func speakerPrefix(current string, previous *string, mode SpeakerPrefixMode) string {
	switch mode {
	case SpeakerPrefixAlways:
		if current == "" {
			return ""
		}
		return current + ": "
	case SpeakerPrefixWhenChanges:
		if current == "" {
			return ""
		}
		if previous == nil || *previous != current {
			return current + ": "
		}
		return ""
	default:
		return ""
	}
}

// effectiveSpeaker returns the segment's speaker, falling back to its first
// word's speaker, then to the default label.
func effectiveSpeaker(seg Segment) string {
	if seg.Speaker != nil && *seg.Speaker != "" {
		return *seg.Speaker
	}
	if len(seg.Words) > 0 && seg.Words[0].Speaker != nil && *seg.Words[0].Speaker != "" {
		return *seg.Words[0].Speaker
	}
	return defaultSpeakerLabel
}
