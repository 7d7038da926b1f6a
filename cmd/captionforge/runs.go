package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"captionforge/internal/store"
)

func newRunsCmd() *cobra.Command {
	runs := &cobra.Command{
		Use:   "runs",
		Short: "Inspect persisted pipeline run history",
	}
	runs.AddCommand(newRunsListCmd())
	return runs
}

func newRunsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent pipeline runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			st, err := store.Open(cfg.Store.SqlitePath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}

			runs, err := st.List(limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}

			for _, r := range runs {
				fmt.Printf("%s\t%s\t%s\tsegments_modified=%d\n", r.ID, r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"), r.Status, r.SegmentsModified)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")
	return cmd
}
