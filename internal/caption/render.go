package caption

import "golang.org/x/sync/errgroup"

// CaptionBundle holds the rendered output of each enabled format.
type CaptionBundle struct {
	VTT  string
	SRT  string
	JSON string
}

// RenderAll renders every format enabled in cfg. The three renderers are
// independent and mutate nothing, so per spec.md §5 they are scheduled
// concurrently via an errgroup; none of them are expected to error, but the
// error path is real in case a future renderer gains one.
func RenderAll(t Transcript, cfg CaptionsConfig) (CaptionBundle, error) {
	var bundle CaptionBundle
	var g errgroup.Group

	if cfg.GenerateVTT {
		g.Go(func() error {
			bundle.VTT = RenderVTT(t, cfg)
			return nil
		})
	}
	if cfg.GenerateSRT {
		g.Go(func() error {
			bundle.SRT = RenderSRT(t, cfg)
			return nil
		})
	}
	if cfg.GenerateJSON {
		g.Go(func() error {
			bundle.JSON = RenderJSON(t, cfg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return CaptionBundle{}, err
	}
	return bundle, nil
}
