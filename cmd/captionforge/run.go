package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"captionforge/internal/caption"
	"captionforge/internal/llmclient"
	"captionforge/pkg/logger"
)

func newRunCmd() *cobra.Command {
	var inputPath, outDir string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the refinement pipeline once over a transcript JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			var t caption.Transcript
			if err := json.Unmarshal(raw, &t); err != nil {
				return fmt.Errorf("parse transcript: %w", err)
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

			pipeline := caption.NewPipeline(
				caption.WithReplacementRules(cfg.ReplacementRules),
				caption.WithNormalization(cfg.Normalization),
				caption.WithCaptions(cfg.Captions),
				caption.WithLLMRefinement(caption.LLMRefinementConfig{
					BedrockInferenceProfileID: cfg.LLM.BedrockInferenceProfileID,
					AdditionalContext:         cfg.LLM.AdditionalContext,
					SuggestionValidation:      cfg.SuggestionValidation,
				}, invoke),
			)

			result, err := pipeline.Run(context.Background(), t)
			if err != nil {
				return fmt.Errorf("run pipeline: %w", err)
			}

			logger.Info("pipeline run complete",
				"segments_modified", result.Replacement.SegmentsModified,
				"normalization_splits", result.Normalization.Splits)

			if outDir == "" {
				enc, err := json.MarshalIndent(result.Captions, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(enc))
				return nil
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			for name, content := range map[string]string{
				"captions.vtt":  result.Captions.VTT,
				"captions.srt":  result.Captions.SRT,
				"captions.json": result.Captions.JSON,
			} {
				if content == "" {
					continue
				}
				if err := os.WriteFile(outDir+"/"+name, []byte(content), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", name, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a transcript JSON file")
	cmd.Flags().StringVar(&outDir, "out", "", "directory to write caption files into (default: print JSON bundle to stdout)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
