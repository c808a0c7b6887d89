package analysis

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Run orchestrates the full analysis pipeline: gather the result table,
// export the CSV files, render the charts. A parse failure anywhere
// aborts the whole run; an empty results tree ends the run cleanly
// without writing any output.
func Run(cfg Config) error {
	setupLog(cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	initialLog(cfg)

	table, err := Gather(cfg)
	if err != nil {
		return err
	}
	if len(table) == 0 {
		log.Warn().
			Str("results_dir", cfg.ResultsDir).
			Msg("No qualifying result files found, check the results dir path")
		return nil
	}

	if err := ExportCSVs(cfg, table); err != nil {
		return err
	}
	if err := RenderCharts(cfg, table); err != nil {
		return err
	}

	log.Info().
		Int("rows", len(table)).
		Int("workloads", len(table.Workloads())).
		Str("output_dir", cfg.OutputDir).
		Msg("Analysis complete")
	return nil
}

func initialLog(cfg Config) {
	log.Info().
		Str("results_dir", cfg.ResultsDir).
		Str("output_dir", cfg.OutputDir).
		Ints("thread_counts", cfg.ThreadCounts).
		Msg("Starting analysis")
}

func setupLog(cfg Config) {
	if strings.ToLower(cfg.LogFormat) == "json" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		log.Logger = log.Output(os.Stdout)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}
}
