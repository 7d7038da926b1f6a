// Command captionforge runs the post-transcription refinement pipeline as a
// one-shot CLI invocation, a long-running HTTP API, or an installed system
// service.
//
// @title                       CaptionForge API
// @version                     1.0
// @description                 Post-transcription refinement pipeline: rule-based replacement, LLM-driven refinement, segment normalization, and VTT/SRT/JSON caption rendering.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	_ "captionforge/docs"
)

func main() {
	// Best-effort: a missing .env is normal in production, not an error.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
