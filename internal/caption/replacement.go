package caption

import (
	"fmt"
	"regexp"
	"strings"
)

// compiledRule is a ReplacementRule with its regex pre-compiled (literal
// rules carry a nil pattern and are matched by plain string search).
type compiledRule struct {
	rule    ReplacementRule
	pattern *regexp.Regexp
	key     string
}

// CompileRules compiles each rule once: regex rules become a global-match
// pattern, literal rules keep their search string. Invalid regex rules are
// skipped (not a fatal error — replacement is best-effort over the rule set).
func CompileRules(rules []ReplacementRule) []compiledRule {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		cr := compiledRule{rule: r}
		switch r.Type {
		case RuleRegex:
			pat, err := regexp.Compile(r.Search)
			if err != nil {
				continue
			}
			cr.pattern = pat
			cr.key = fmt.Sprintf("r'%s'->%s", r.Search, r.Replacement)
		default:
			cr.key = fmt.Sprintf("%s->%s", r.Search, r.Replacement)
		}
		compiled = append(compiled, cr)
	}
	return compiled
}

// ReplacementStats summarizes the effect of ApplyReplacements over a transcript.
type ReplacementStats struct {
	SegmentsModified int
	WordChangeCount  int
	RuleCounts       map[string]int
}

// ApplyReplacements runs the compiled rules over every segment of t in rule
// order, reconciling any segment whose text actually changes. Replacement is
// order-sensitive across rules but independent of segment order: each
// segment's outcome depends only on its own words.
func ApplyReplacements(t *Transcript, rules []ReplacementRule) ReplacementStats {
	compiled := CompileRules(rules)
	stats := ReplacementStats{RuleCounts: make(map[string]int)}

	for i := range t.Segments {
		seg := &t.Segments[i]
		if len(seg.Words) == 0 {
			continue
		}

		origWords := make([]string, len(seg.Words))
		for wi, w := range seg.Words {
			origWords[wi] = w.Text
		}
		source := ReconstructText(origWords)

		text := source
		for _, cr := range compiled {
			count, next := applyRule(text, cr)
			if count > 0 {
				stats.RuleCounts[cr.key] += count
			}
			text = next
		}

		if text == source {
			continue
		}

		patched := TextToWords(text)
		diffOps := ComputeDiff(origWords, patched)
		changed := 0
		for _, op := range diffOps {
			if op.Kind != OpKeep {
				changed++
			}
		}

		ReconcileSegment(seg, patched)
		stats.SegmentsModified++
		stats.WordChangeCount += changed
	}

	return stats
}

// applyRule counts non-overlapping matches of cr in text and returns the
// match count plus the text with every match substituted.
func applyRule(text string, cr compiledRule) (int, string) {
	if cr.pattern != nil {
		matches := cr.pattern.FindAllStringIndex(text, -1)
		if len(matches) == 0 {
			return 0, text
		}
		return len(matches), cr.pattern.ReplaceAllString(text, cr.rule.Replacement)
	}

	if cr.rule.Search == "" {
		return 0, text
	}

	count := 0
	idx := 0
	for {
		pos := strings.Index(text[idx:], cr.rule.Search)
		if pos < 0 {
			break
		}
		count++
		idx += pos + len(cr.rule.Search)
	}
	if count == 0 {
		return 0, text
	}
	return count, strings.ReplaceAll(text, cr.rule.Search, cr.rule.Replacement)
}
