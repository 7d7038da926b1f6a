package caption

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"captionforge/pkg/logger"
)

const defaultSpeakerLabel = "SPEAKER_00"

// promptTemplate is the fixed instruction wrapper around the serialized
// transcript lines. It instructs the model to fix only machine-transcription
// errors, never to rephrase, and to reply in the structured JSON shape
// LLMRefine expects.
const promptTemplate = `You are cleaning up a machine transcription of a podcast. Fix only
machine-transcription errors: mis-heard words, dropped/duplicated words,
filler words that obscure meaning. Never rephrase or re-grammar a sentence
that is already correct. Identify speaker names from context when possible.

%s

Transcript lines (format "[index] [speaker] words"):
%s

Respond with ONLY a JSON object in this exact format (no markdown, no prose):
{
  "identifiedSpeakers": {"SPEAKER_00": "Name or SPEAKER_00", ...},
  "updates": [{"idx": 0, "text": "corrected line text"}, ...]
}`

// LLMInvoker is the injected capability the core uses to reach an LLM. It
// takes a fully serialized request body and returns the raw reply text. The
// core assumes no vendor identity; concrete adapters live outside this package.
type LLMInvoker func(ctx context.Context, requestBody string) (string, error)

// LLMRefinementConfig carries the model-selection and validation knobs for
// the refinement step. transcription.* / credential / vendor concerns are
// out of the core's scope; this config only holds what the core itself needs.
type LLMRefinementConfig struct {
	BedrockInferenceProfileID string
	AdditionalContext         string
	ModelConfig               map[string]any
	SuggestionValidation      SuggestionValidationConfig
}

// IgnoredSuggestion records one rejected or skipped per-segment update.
type IgnoredSuggestion struct {
	Idx    int
	Reason RejectReason
}

// AppliedUpdate records one accepted per-segment rewrite.
type AppliedUpdate struct {
	Idx           int
	OriginalText  string
	CorrectedText string
}

// RefinementStats summarizes one LLM refinement pass.
type RefinementStats struct {
	SegmentsProcessed  int
	SegmentsUpdated    int
	SpeakersIdentified int
	SpeakerMap         map[string]string
	AppliedUpdates     []AppliedUpdate
	IgnoredSuggestions []IgnoredSuggestion
	LLMResponseTimeMs  int64
}

type llmReply struct {
	IdentifiedSpeakers map[string]string `json:"identifiedSpeakers"`
	Updates            []struct {
		Idx  json.Number `json:"idx"`
		Text string      `json:"text"`
	} `json:"updates"`
}

// RefineWithLLM serializes t's segments, invokes invoke, parses the reply,
// applies the speaker map, and validates+applies per-segment updates. An LLM
// transport/parse failure is non-fatal: it produces no changes and a stats
// record with SpeakersIdentified=0, preserving the measured latency.
func RefineWithLLM(ctx context.Context, t *Transcript, cfg LLMRefinementConfig, invoke LLMInvoker) RefinementStats {
	stats := RefinementStats{
		SegmentsProcessed: len(t.Segments),
		SpeakerMap:        map[string]string{},
	}

	lines := serializeLines(t.Segments)
	request := buildRequest(lines, cfg.AdditionalContext)

	start := time.Now()
	reply, err := invoke(ctx, request)
	stats.LLMResponseTimeMs = time.Since(start).Milliseconds()
	if err != nil {
		logger.Warn("llm refinement: invocation failed", "error", err)
		return stats
	}

	parsed, ok := parseReply(reply)
	if !ok {
		logger.Warn("llm refinement: reply could not be parsed")
		return stats
	}

	applySpeakerMap(t, parsed.IdentifiedSpeakers, &stats)

	validation := cfg.SuggestionValidation
	for _, u := range parsed.Updates {
		idx, err := strconv.Atoi(u.Idx.String())
		if err != nil || idx < 0 || idx >= len(t.Segments) {
			continue
		}
		applyUpdate(t, idx, u.Text, validation, &stats)
	}

	return stats
}

// serializeLines builds the indexed "[i] [speaker] wordsText" lines the
// prompt presents to the model. wordsText comes from the words array (the
// source of truth) whenever it is non-empty; a segment without words falls
// back to its Text field.
func serializeLines(segments []Segment) []string {
	lines := make([]string, len(segments))
	for i, seg := range segments {
		speaker := defaultSpeakerLabel
		if seg.Speaker != nil && *seg.Speaker != "" {
			speaker = *seg.Speaker
		}
		lines[i] = fmt.Sprintf("[%d] [%s] %s", i, speaker, wordsText(seg))
	}
	return lines
}

func wordsText(seg Segment) string {
	if len(seg.Words) == 0 {
		return seg.Text
	}
	texts := make([]string, len(seg.Words))
	for i, w := range seg.Words {
		texts[i] = w.Text
	}
	return ReconstructText(texts)
}

func buildRequest(lines []string, additionalContext string) string {
	ctxLine := ""
	if additionalContext != "" {
		ctxLine = "Additional context: " + additionalContext
	}
	return fmt.Sprintf(promptTemplate, ctxLine, strings.Join(lines, "\n"))
}

// parseReply locates the first '{' and last '}' in reply and parses the
// slice as JSON; any failure yields ok=false (no changes).
func parseReply(reply string) (llmReply, bool) {
	start := strings.IndexByte(reply, '{')
	end := strings.LastIndexByte(reply, '}')
	if start < 0 || end < start {
		return llmReply{}, false
	}
	var parsed llmReply
	if err := json.Unmarshal([]byte(reply[start:end+1]), &parsed); err != nil {
		return llmReply{}, false
	}
	return parsed, true
}

// applySpeakerMap rewrites segment and word speaker labels for every mapping
// that is not the identity mapping onto itself.
func applySpeakerMap(t *Transcript, identified map[string]string, stats *RefinementStats) {
	for label, name := range identified {
		if name == "" || name == label {
			continue
		}
		stats.SpeakerMap[label] = name
		stats.SpeakersIdentified++

		for i := range t.Segments {
			seg := &t.Segments[i]
			if seg.Speaker != nil && *seg.Speaker == label {
				seg.Speaker = strPtr(name)
			}
			for wi := range seg.Words {
				w := &seg.Words[wi]
				if w.Speaker != nil && *w.Speaker == label {
					w.Speaker = strPtr(name)
				}
			}
		}
	}
}

// applyUpdate validates and, if accepted, reconciles a single per-segment
// rewrite, recording the outcome on stats.
func applyUpdate(t *Transcript, idx int, text string, cfg SuggestionValidationConfig, stats *RefinementStats) {
	seg := &t.Segments[idx]
	current := wordsText(*seg)

	if text == current {
		stats.IgnoredSuggestions = append(stats.IgnoredSuggestions, IgnoredSuggestion{Idx: idx, Reason: ReasonNoChange})
		return
	}

	result := Validate(current, text, cfg)
	if !result.Accepted {
		stats.IgnoredSuggestions = append(stats.IgnoredSuggestions, IgnoredSuggestion{Idx: idx, Reason: result.Reason})
		return
	}

	ReconcileSegment(seg, TextToWords(text))
	stats.SegmentsUpdated++
	stats.AppliedUpdates = append(stats.AppliedUpdates, AppliedUpdate{
		Idx:           idx,
		OriginalText:  current,
		CorrectedText: text,
	})
}
