package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command; all tool commands hang off it
var rootCmd = &cobra.Command{
	Use:   "queue-bench-report",
	Short: "Aggregate and chart concurrent-queue benchmark results",
	Long: `queue-bench-report post-processes the result files written by the
concurrent-queue benchmark harness: it walks a results tree, parses the
per-run metric files, exports aggregated CSV tables and renders
metric-vs-threads comparison charts for each workload.`,
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
