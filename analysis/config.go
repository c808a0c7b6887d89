package analysis

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config defines the analysis parameters passed from the CLI.
// It is fixed at startup and shared read-only by every pipeline stage.
type Config struct {
	ResultsDir   string            `yaml:"results_dir"`   // root of the benchmark results tree
	OutputDir    string            `yaml:"output_dir"`    // root for CSV and chart output
	ThreadCounts []int             `yaml:"thread_counts"` // thread counts to retain
	PlotSubdirs  map[string]string `yaml:"plot_subdirs"`  // metric key -> plots subdirectory
	LogFormat    string            `yaml:"log_format"`    // "json" or "console", default is "console"
}

// DefaultConfig returns the configuration the harness scripts assume:
// results and output trees next to the working directory, the thread
// counts that are meaningful on the benchmark machine, and one plots
// subdirectory per metric.
func DefaultConfig() Config {
	return Config{
		ResultsDir:   "results",
		OutputDir:    "final_analysis_output",
		ThreadCounts: []int{4, 8, 16},
		PlotSubdirs: map[string]string{
			"runtime_ms":              "runtime",
			"throughput_reqs_per_sec": "throughput",
			"latency_ms":              "latency",
			"avg_enqueue_ms":          "enqueue",
			"avg_dequeue_ms":          "dequeue",
		},
		LogFormat: "console",
	}
}

// LoadConfig reads a Config from a YAML file. Fields absent from the
// file keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate performs basic configuration validation
func (c Config) Validate() error {
	if c.ResultsDir == "" {
		return fmt.Errorf("results directory cannot be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}
	if len(c.ThreadCounts) == 0 {
		return fmt.Errorf("at least one thread count must be configured")
	}
	for _, t := range c.ThreadCounts {
		if t <= 0 {
			return fmt.Errorf("invalid thread count: %d", t)
		}
	}
	for _, m := range Metrics {
		if c.PlotSubdirs[m.Key] == "" {
			return fmt.Errorf("no plot subdirectory configured for metric %q", m.Key)
		}
	}
	return nil
}

// CSVDir returns the directory that receives the CSV tables.
func (c Config) CSVDir() string {
	return filepath.Join(c.OutputDir, "csv")
}

// PlotDir returns the directory that receives charts for the given metric.
func (c Config) PlotDir(metricKey string) string {
	return filepath.Join(c.OutputDir, "plots", c.PlotSubdirs[metricKey])
}

// allowedThreads builds the thread-count allow-set used by the walker.
func (c Config) allowedThreads() map[int]bool {
	allowed := make(map[int]bool, len(c.ThreadCounts))
	for _, t := range c.ThreadCounts {
		allowed[t] = true
	}
	return allowed
}
