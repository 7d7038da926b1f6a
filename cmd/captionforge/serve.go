package main

import (
	"context"
	"fmt"
	"net/http"

	kservice "github.com/kardianos/service"
	"github.com/spf13/cobra"

	"captionforge/internal/api"
	"captionforge/internal/caption"
	"captionforge/internal/config"
	"captionforge/internal/llmclient"
	"captionforge/internal/store"
	"captionforge/pkg/logger"
)

func newServeCmd() *cobra.Command {
	var asService bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			prog := &apiProgram{cfg: cfg}
			if !asService {
				return prog.run()
			}

			svc, err := kservice.New(prog, &kservice.Config{
				Name:        "captionforge",
				DisplayName: "captionforge API",
				Description: "Post-transcription refinement pipeline HTTP API",
			})
			if err != nil {
				return fmt.Errorf("service: %w", err)
			}
			return svc.Run()
		},
	}

	cmd.Flags().BoolVar(&asService, "service", false, "run under the OS service manager (install separately with a service-install tool)")
	return cmd
}

// apiProgram adapts the API server to the kardianos/service lifecycle:
// Start must return quickly, so the listener runs on its own goroutine.
type apiProgram struct {
	cfg    *config.PipelineConfig
	cancel context.CancelFunc
	srv    *http.Server
}

func (p *apiProgram) Start(s kservice.Service) error {
	go p.run()
	return nil
}

func (p *apiProgram) Stop(s kservice.Service) error {
	if p.cancel != nil {
		p.cancel()
	}
	if p.srv != nil {
		return p.srv.Close()
	}
	return nil
}

func (p *apiProgram) run() error {
	cfg := p.cfg

	st, err := store.Open(cfg.Store.SqlitePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	invoke := llmclient.Noop()
	if cfg.LLM.Provider == "http" {
		invoke = llmclient.HTTP(llmclient.HTTPConfig{
			Endpoint:    cfg.LLM.Endpoint,
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			MaxTokens:   cfg.LLM.MaxTokens,
			Temperature: cfg.LLM.Temperature,
		})
	}
	llmCfg := caption.LLMRefinementConfig{
		BedrockInferenceProfileID: cfg.LLM.BedrockInferenceProfileID,
		AdditionalContext:         cfg.LLM.AdditionalContext,
		SuggestionValidation:      cfg.SuggestionValidation,
	}

	pipeline := caption.NewPipeline(
		caption.WithReplacementRules(cfg.ReplacementRules),
		caption.WithNormalization(cfg.Normalization),
		caption.WithCaptions(cfg.Captions),
		caption.WithLLMRefinement(llmCfg, invoke),
	)

	srv := api.NewServer(pipeline, st, cfg.Server.JWTSigningSecret, &llmCfg, invoke)
	p.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Router(),
	}

	logger.Info("captionforge API starting", "port", cfg.Server.Port)
	if err := p.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
