package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleResult is a complete result file as the harness writes it.
const sampleResult = `Total runtime: 120.5 sec
Avg enqueue time: 1500 µs
Avg dequeue time: 800 µs
Avg end-to-end request latency: 2 ms
Throughput: 9500 ops
`

// writeResultFile drops a result file into dir and returns its path.
func writeResultFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseTimeToMs(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5 ms", 5},
		{"0.25 ms", 0.25},
		{"1500 µs", 1.5},
		{"2000000 ns", 2.0},
		{"  800 µs  ", 0.8},
	}
	for _, tt := range tests {
		got, err := parseTimeToMs(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.InDelta(t, tt.want, got, 1e-12, "input %q", tt.in)
	}
}

func TestParseTimeToMsUnknownUnit(t *testing.T) {
	_, err := parseTimeToMs("120.5 sec")
	require.ErrorIs(t, err, ErrUnknownUnit)
}

func TestParseTimeToMsMalformed(t *testing.T) {
	for _, in := range []string{"", "5", "5 ms extra", "abc ms"} {
		_, err := parseTimeToMs(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseResultFile(t *testing.T) {
	path := writeResultFile(t, t.TempDir(), "lockfree_results_run1.txt", sampleResult)

	rec, err := ParseResultFile(path)
	require.NoError(t, err)

	assert.Equal(t, 120.5, rec.RuntimeMs)
	assert.Equal(t, 1.5, rec.AvgEnqueueMs)
	assert.Equal(t, 0.8, rec.AvgDequeueMs)
	assert.Equal(t, 2.0, rec.LatencyMs)
	assert.Equal(t, 9500.0, rec.ThroughputReqsPerSec)
}

func TestParseResultFileIgnoresLineOrderAndWhitespace(t *testing.T) {
	content := `   Throughput: 9500 ops
Avg end-to-end request latency: 2 ms
some unrelated harness output
Avg dequeue time: 800 µs
	Avg enqueue time: 1500 µs
Total runtime: 120.5 sec
`
	path := writeResultFile(t, t.TempDir(), "lockfree_results_run1.txt", content)

	rec, err := ParseResultFile(path)
	require.NoError(t, err)
	assert.Equal(t, 120.5, rec.RuntimeMs)
	assert.Equal(t, 9500.0, rec.ThroughputReqsPerSec)
}

func TestParseResultFileDuplicateLineOverwrites(t *testing.T) {
	content := sampleResult + "Throughput: 9600 ops\n"
	path := writeResultFile(t, t.TempDir(), "lockfree_results_run1.txt", content)

	rec, err := ParseResultFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9600.0, rec.ThroughputReqsPerSec)
}

func TestParseResultFileMissingMetric(t *testing.T) {
	// No throughput line: the file must be rejected as a whole, not
	// produce a partial record.
	content := `Total runtime: 120.5 sec
Avg enqueue time: 1500 µs
Avg dequeue time: 800 µs
Avg end-to-end request latency: 2 ms
`
	path := writeResultFile(t, t.TempDir(), "lockfree_results_run1.txt", content)

	_, err := ParseResultFile(path)
	require.ErrorIs(t, err, ErrMissingMetrics)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "throughput_reqs_per_sec")
}

func TestParseResultFileEmpty(t *testing.T) {
	path := writeResultFile(t, t.TempDir(), "lockfree_results_run1.txt", "")

	_, err := ParseResultFile(path)
	require.ErrorIs(t, err, ErrMissingMetrics)
}

func TestParseResultFileUnknownUnit(t *testing.T) {
	content := `Total runtime: 120.5 sec
Avg enqueue time: 1500 sec
Avg dequeue time: 800 µs
Avg end-to-end request latency: 2 ms
Throughput: 9500 ops
`
	path := writeResultFile(t, t.TempDir(), "lockfree_results_run1.txt", content)

	_, err := ParseResultFile(path)
	require.ErrorIs(t, err, ErrUnknownUnit)
	assert.Contains(t, err.Error(), path)
}

func TestParseResultFileNotFound(t *testing.T) {
	_, err := ParseResultFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
