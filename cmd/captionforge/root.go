package main

import (
	"github.com/spf13/cobra"

	"captionforge/internal/config"
	"captionforge/pkg/logger"
)

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "captionforge",
		Short:         "Refine transcripts into corrected, speaker-labeled captions",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "captionforge.yaml", "path to the pipeline config file")

	root.AddCommand(newRunCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newRunsCmd())

	return root
}

func loadConfig() (*config.PipelineConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(string(cfg.Server.LogLevel))
	return cfg, nil
}
