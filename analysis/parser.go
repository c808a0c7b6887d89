package analysis

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Parse errors surfaced to the pipeline. Both are fatal: a result file
// with malformed or incomplete metrics aborts the whole run rather than
// polluting the aggregated table.
var (
	ErrUnknownUnit    = errors.New("unknown time unit")
	ErrMissingMetrics = errors.New("missing metrics")
)

// fieldRule binds a metric line prefix to the function that parses the
// remainder of the line and the Record field it populates.
type fieldRule struct {
	key    string // metric key, for error messages
	prefix string // matched against each trimmed line
	parse  func(rest string) (float64, error)
	assign func(r *Record, v float64)
}

// fieldRules drives the line scan. Runtime and throughput are taken
// verbatim (the harness already reports them in ms and req/s); the
// three time metrics carry a unit and are normalized to milliseconds.
var fieldRules = []fieldRule{
	{"runtime_ms", "Total runtime:", parseLeadingFloat, func(r *Record, v float64) { r.RuntimeMs = v }},
	{"avg_enqueue_ms", "Avg enqueue time:", parseTimeToMs, func(r *Record, v float64) { r.AvgEnqueueMs = v }},
	{"avg_dequeue_ms", "Avg dequeue time:", parseTimeToMs, func(r *Record, v float64) { r.AvgDequeueMs = v }},
	{"latency_ms", "Avg end-to-end request latency:", parseTimeToMs, func(r *Record, v float64) { r.LatencyMs = v }},
	{"throughput_reqs_per_sec", "Throughput:", parseLeadingFloat, func(r *Record, v float64) { r.ThroughputReqsPerSec = v }},
}

// parseLeadingFloat reads the first whitespace-separated token as a
// float, ignoring anything after it (e.g. a trailing unit word).
func parseLeadingFloat(rest string) (float64, error) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return 0, fmt.Errorf("no value found")
	}
	return strconv.ParseFloat(fields[0], 64)
}

// parseTimeToMs parses "<value> <unit>" and converts the value to
// milliseconds. Only ms, µs and ns are valid units.
func parseTimeToMs(rest string) (float64, error) {
	fields := strings.Fields(rest)
	if len(fields) != 2 {
		return 0, fmt.Errorf("expected '<value> <unit>', got %q", strings.TrimSpace(rest))
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, err
	}

	switch fields[1] {
	case "ms":
		return value, nil
	case "µs":
		return value / 1_000.0, nil
	case "ns":
		return value / 1_000_000.0, nil
	default:
		return 0, fmt.Errorf("%w: '%s'", ErrUnknownUnit, fields[1])
	}
}

// ParseResultFile extracts the five metrics from one result file. Lines
// are matched independently by prefix, so their order doesn't matter;
// a later duplicate of a metric line overwrites the earlier value. The
// returned Record has its metric fields set but no configuration stamp.
func ParseResultFile(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("failed to open result file: %w", err)
	}
	defer f.Close()

	var rec Record
	seen := make([]bool, len(fieldRules))

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		for i, rule := range fieldRules {
			rest, ok := strings.CutPrefix(line, rule.prefix)
			if !ok {
				continue
			}
			v, err := rule.parse(rest)
			if err != nil {
				return Record{}, fmt.Errorf("parsing %s in %s: %w", rule.key, path, err)
			}
			rule.assign(&rec, v)
			seen[i] = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("failed to read result file %s: %w", path, err)
	}

	var missing []string
	for i, rule := range fieldRules {
		if !seen[i] {
			missing = append(missing, rule.key)
		}
	}
	if len(missing) > 0 {
		return Record{}, fmt.Errorf("%w in file %s: %s", ErrMissingMetrics, path, strings.Join(missing, ", "))
	}

	return rec, nil
}
