package agentlint

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagSARIF   bool
	flagNoColor bool
	flagFailOn  string

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the agentlint CLI.
var rootCmd = &cobra.Command{
	Use:           "agentlint",
	Short:         "Lint multi-agent architectures for dysfunction patterns",
	Long:          "agentlint checks a YAML/JSON description of a multi-agent system for known organizational dysfunction anti-patterns and reports findings with a pass/fail exit status.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// invoked with no subcommand: show usage and fail
		_ = cmd.Help()
		return fmt.Errorf("usage: agentlint check <path>")
	},
}

// Execute runs the agentlint CLI. It should be called by the main package.
// Usage, file and parse errors all exit with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit findings as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "high", "fail on low|medium|high")
}
