package agentlint

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentlint/agentlint/internal/config"
	"github.com/agentlint/agentlint/internal/engine"
	"github.com/agentlint/agentlint/internal/report"
)

const baselineFile = "agentlint.baseline.json"

var (
	flagInclude    string
	flagExclude    string
	flagMaxStages  int
	flagMaxAgents  int
	flagDisable    string
	flagNoBaseline bool
)

func init() {
	cmd := &cobra.Command{
		Use:     "check <path>",
		Aliases: []string{"run"},
		Short:   "Check an architecture description for dysfunction patterns",
		Args:    cobra.ExactArgs(1),
		RunE:  runCheck,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs (directory mode)")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs (directory mode)")
	cmd.Flags().IntVar(&flagMaxStages, "max-stages", 0, "max recommended pipeline stages (default 4)")
	cmd.Flags().IntVar(&flagMaxAgents, "max-agents", 0, "max recommended agent count (default 7)")
	cmd.Flags().StringVar(&flagDisable, "disable", "", "disable these patterns (comma-separated names)")
	cmd.Flags().BoolVar(&flagNoBaseline, "no-baseline", false, "report all findings, ignoring the baseline")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("file not found: %s", target)
	}
	root := target
	if !info.IsDir() {
		root = filepath.Dir(target)
	}

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(root); err == nil {
		lcfg = c
	}

	cfg := engine.Config{
		Root:            target,
		IncludeGlobs:    pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:    pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxStages:       pickInt(flagMaxStages, lcfg.MaxStages, gcfg.MaxStages),
		MaxAgents:       pickInt(flagMaxAgents, lcfg.MaxAgents, gcfg.MaxAgents),
		DisablePatterns: pickString(flagDisable, lcfg.Disable, gcfg.Disable),
	}

	failOn := flagFailOn
	if !cmd.Flags().Changed("fail-on") {
		if v := pickString("", lcfg.FailOn, gcfg.FailOn); v != "" {
			failOn = v
		}
	}
	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)

	res, err := engine.CheckPath(cfg)
	if err != nil {
		return err
	}

	findings := res.Findings
	if !pickBool(flagNoBaseline, lcfg.NoBaseline, gcfg.NoBaseline) {
		baseline, _ := report.LoadBaseline(baselineFile)
		findings = report.FilterNewFindings(findings, baseline)
	}

	switch {
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, findings, version); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case flagJSON:
		if err := report.WriteJSON(os.Stdout, findings); err != nil {
			return err
		}
	default:
		report.PrintReport(os.Stdout, findings, report.PrintOptions{
			NoColor:      noColor,
			ShowPath:     res.FilesChecked > 1,
			Duration:     res.Duration,
			FilesChecked: res.FilesChecked,
		})
	}

	if report.ShouldFail(findings, failOn) {
		os.Exit(1)
	}
	return nil
}
