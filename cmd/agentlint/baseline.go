package agentlint

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentlint/agentlint/internal/engine"
	"github.com/agentlint/agentlint/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage baselines",
	}

	update := &cobra.Command{
		Use:   "update <path>",
		Short: "Record current findings so later checks only report new ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			res, err := engine.CheckPath(engine.Config{Root: args[0]})
			if err != nil {
				return err
			}
			if err := report.SaveBaseline(baselineFile, res.Findings); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, "Baseline updated.")
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
	cmd.AddCommand(update)
}
