package caption

import "context"

// PipelineOption is a functional option for configuring a [Pipeline].
type PipelineOption func(*Pipeline)

// WithReplacementRules sets the literal/regex rules applied by the
// Replacement step. Default: none.
func WithReplacementRules(rules []ReplacementRule) PipelineOption {
	return func(p *Pipeline) {
		p.replacementRules = rules
	}
}

// WithLLMRefinement attaches an LLM refinement stage. When invoke is nil
// (the default), the refinement step is skipped entirely.
func WithLLMRefinement(cfg LLMRefinementConfig, invoke LLMInvoker) PipelineOption {
	return func(p *Pipeline) {
		p.llmCfg = &cfg
		p.llmInvoke = invoke
	}
}

// WithNormalization overrides the default [NormalizationConfig].
func WithNormalization(cfg NormalizationConfig) PipelineOption {
	return func(p *Pipeline) {
		p.normCfg = cfg
	}
}

// WithCaptions overrides the default [CaptionsConfig].
func WithCaptions(cfg CaptionsConfig) PipelineOption {
	return func(p *Pipeline) {
		p.captionsCfg = cfg
	}
}

// Pipeline runs the ordered refinement stages — Replacement, LLM Refinement,
// Normalization — then renders captions. Stages run in that fixed order
// (spec.md §5); each stage's output text is the input to the next stage's
// reconciliation. Pipeline is safe for concurrent use across independent
// Run calls (it carries no mutable state of its own).
type Pipeline struct {
	replacementRules []ReplacementRule
	llmCfg           *LLMRefinementConfig
	llmInvoke        LLMInvoker
	normCfg          NormalizationConfig
	captionsCfg      CaptionsConfig
}

// NewPipeline constructs a [Pipeline] with the supplied options. By default
// the LLM stage is disabled and replacement rules are empty; normalization
// and caption settings use their documented defaults.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		normCfg:     DefaultNormalizationConfig(),
		captionsCfg: DefaultCaptionsConfig(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Result bundles a pipeline run's refined transcript, rendered captions, and
// per-stage statistics.
type Result struct {
	Transcript    Transcript
	Captions      CaptionBundle
	Replacement   ReplacementStats
	Refinement    *RefinementStats
	Normalization NormalizationStats
}

// Run executes Replacement, then (if configured) LLM Refinement, then
// Normalization, over t, and renders the configured caption formats from the
// result. Result.Transcript starts as a shallow copy of t that shares its
// Segments backing array, so Replacement and LLM edits to existing segments
// are also visible through the caller's t; Normalization then assigns a new
// Segments slice to Result.Transcript only. Context cancellation only
// affects the LLM stage: an invoker error (cancellation included) leaves that
// stage with no changes and Run carries on; the only error Run returns is
// one from caption rendering.
func (p *Pipeline) Run(ctx context.Context, t Transcript) (*Result, error) {
	result := &Result{Transcript: t}

	result.Replacement = ApplyReplacements(&result.Transcript, p.replacementRules)

	if p.llmCfg != nil && p.llmInvoke != nil {
		stats := RefineWithLLM(ctx, &result.Transcript, *p.llmCfg, p.llmInvoke)
		result.Refinement = &stats
	}

	result.Normalization = NormalizeSegments(&result.Transcript, p.normCfg)

	bundle, err := RenderAll(result.Transcript, p.captionsCfg)
	if err != nil {
		return nil, err
	}
	result.Captions = bundle

	return result, nil
}
