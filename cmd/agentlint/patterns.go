package agentlint

import (
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/agentlint/agentlint/internal/patterns"
)

func init() {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List dysfunction patterns",
		Run: func(_ *cobra.Command, _ []string) {
			t := tablewriter.NewWriter(os.Stdout)
			t.SetHeader([]string{"NAME", "SEVERITY", "TRIGGER", "FIX"})
			t.SetAutoWrapText(false)
			for _, p := range patterns.All() {
				trigger := strings.Join(p.Keywords, ", ")
				if trigger == "" {
					trigger = "stage count"
				}
				t.Append([]string{p.Name, string(p.Severity), trigger, p.Fix})
			}
			for _, p := range patterns.Appended() {
				trigger := "agent count"
				if p.Name != patterns.ExcessiveAgents {
					trigger = "absence of indicator terms"
				}
				t.Append([]string{p.Name, string(p.Severity), trigger, p.Fix})
			}
			t.Render()
		},
	}
	rootCmd.AddCommand(cmd)
}
