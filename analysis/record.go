package analysis

import "sort"

// Record holds the metrics parsed from a single benchmark result file,
// stamped with the configuration it was measured under.
type Record struct {
	Threads           int    // worker thread count, from the directory name
	RequestsPerClient int    // workload size, from the directory name
	Queue             string // queue implementation under test, from the file name

	RuntimeMs            float64
	ThroughputReqsPerSec float64
	LatencyMs            float64
	AvgEnqueueMs         float64
	AvgDequeueMs         float64
}

// Table is the aggregated result set for one analysis run. Duplicate
// (threads, requests, queue) triples are kept as distinct trial runs.
type Table []Record

// Metric describes one of the recorded performance measures: its CSV
// column key, the human-readable axis label, and how to read it off a
// Record. Adding a metric is a data change here, not a control-flow
// change elsewhere.
type Metric struct {
	Key   string
	Label string
	Value func(Record) float64
}

// Metrics lists the five recorded measures in CSV column order.
var Metrics = []Metric{
	{Key: "runtime_ms", Label: "Runtime (ms)", Value: func(r Record) float64 { return r.RuntimeMs }},
	{Key: "throughput_reqs_per_sec", Label: "Throughput (req/s)", Value: func(r Record) float64 { return r.ThroughputReqsPerSec }},
	{Key: "latency_ms", Label: "Latency (ms)", Value: func(r Record) float64 { return r.LatencyMs }},
	{Key: "avg_enqueue_ms", Label: "Avg Enqueue Time (ms)", Value: func(r Record) float64 { return r.AvgEnqueueMs }},
	{Key: "avg_dequeue_ms", Label: "Avg Dequeue Time (ms)", Value: func(r Record) float64 { return r.AvgDequeueMs }},
}

// Sorted returns a copy ordered by (requests per client, threads, queue)
// ascending. The input table is left untouched.
func (t Table) Sorted() Table {
	sorted := make(Table, len(t))
	copy(sorted, t)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.RequestsPerClient != b.RequestsPerClient {
			return a.RequestsPerClient < b.RequestsPerClient
		}
		if a.Threads != b.Threads {
			return a.Threads < b.Threads
		}
		return a.Queue < b.Queue
	})
	return sorted
}

// ByWorkload groups records by requests-per-client value.
func (t Table) ByWorkload() map[int]Table {
	grouped := make(map[int]Table)
	for _, r := range t {
		grouped[r.RequestsPerClient] = append(grouped[r.RequestsPerClient], r)
	}
	return grouped
}

// Workloads returns the distinct requests-per-client values in ascending order.
func (t Table) Workloads() []int {
	grouped := t.ByWorkload()
	workloads := make([]int, 0, len(grouped))
	for reqs := range grouped {
		workloads = append(workloads, reqs)
	}
	sort.Ints(workloads)
	return workloads
}

// Queues returns the distinct queue names in the table in ascending order.
func (t Table) Queues() []string {
	seen := make(map[string]bool)
	var queues []string
	for _, r := range t {
		if !seen[r.Queue] {
			seen[r.Queue] = true
			queues = append(queues, r.Queue)
		}
	}
	sort.Strings(queues)
	return queues
}
