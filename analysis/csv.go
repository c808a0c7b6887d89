package analysis

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"
)

// allResultsFile is the CSV holding the entire aggregated table.
const allResultsFile = "all_results_filtered.csv"

func csvHeader() []string {
	header := []string{"threads", "requests_per_client", "queue"}
	for _, m := range Metrics {
		header = append(header, m.Key)
	}
	return header
}

// WriteCSV writes the table to path, sorted by (requests per client,
// threads, queue) ascending so repeated runs produce identical files.
func WriteCSV(table Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range table.Sorted() {
		row := []string{
			strconv.Itoa(rec.Threads),
			strconv.Itoa(rec.RequestsPerClient),
			rec.Queue,
		}
		for _, m := range Metrics {
			row = append(row, strconv.FormatFloat(m.Value(rec), 'f', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("rows", len(table)).Msg("Wrote CSV")
	return nil
}

// ExportCSVs writes the full table plus one subset file per workload
// into the configured CSV directory.
func ExportCSVs(cfg Config, table Table) error {
	csvDir := cfg.CSVDir()
	if err := os.MkdirAll(csvDir, 0o755); err != nil {
		return fmt.Errorf("failed to create CSV directory: %w", err)
	}

	if err := WriteCSV(table, filepath.Join(csvDir, allResultsFile)); err != nil {
		return err
	}

	grouped := table.ByWorkload()
	for _, reqs := range table.Workloads() {
		name := fmt.Sprintf("aggregate_%d_reqPerClient.csv", reqs)
		if err := WriteCSV(grouped[reqs], filepath.Join(csvDir, name)); err != nil {
			return err
		}
	}
	return nil
}
