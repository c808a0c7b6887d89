package cmd

import (
	"log"

	"queue-bench-report/analysis"

	"github.com/spf13/cobra"
)

var (
	configFile   string
	resultsDir   string
	outputDir    string
	threadCounts []int
	logFormat    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Parse benchmark result files, export CSV tables and render charts",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := analysis.DefaultConfig()
		if configFile != "" {
			loaded, err := analysis.LoadConfig(configFile)
			if err != nil {
				log.Fatalf("Loading config failed: %v", err)
			}
			cfg = loaded
		}

		// Explicit flags win over config file values
		if cmd.Flags().Changed("results-dir") {
			cfg.ResultsDir = resultsDir
		}
		if cmd.Flags().Changed("output-dir") {
			cfg.OutputDir = outputDir
		}
		if cmd.Flags().Changed("threads") {
			cfg.ThreadCounts = threadCounts
		}
		if cmd.Flags().Changed("log-format") {
			cfg.LogFormat = logFormat
		}

		if err := analysis.Run(cfg); err != nil {
			log.Fatalf("Analysis failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	defaults := analysis.DefaultConfig()

	analyzeCmd.Flags().StringVar(&configFile, "config", "", "Path to optional YAML config file (flags override its values)")
	analyzeCmd.Flags().StringVar(&resultsDir, "results-dir", defaults.ResultsDir, "Root directory of the benchmark results tree")
	analyzeCmd.Flags().StringVar(&outputDir, "output-dir", defaults.OutputDir, "Root directory for CSV and chart output")
	analyzeCmd.Flags().IntSliceVar(&threadCounts, "threads", defaults.ThreadCounts, "Thread counts to retain; other configurations are skipped")
	analyzeCmd.Flags().StringVar(&logFormat, "log-format", defaults.LogFormat, "Log format: 'json' or 'console'")
}
