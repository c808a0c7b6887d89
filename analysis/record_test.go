package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mkRec(threads, reqs int, queue string) Record {
	return Record{Threads: threads, RequestsPerClient: reqs, Queue: queue}
}

func TestTableSorted(t *testing.T) {
	table := Table{
		mkRec(16, 500, "msqueue"),
		mkRec(8, 100, "msqueue"),
		mkRec(8, 100, "lockfree"),
		mkRec(4, 500, "lockfree"),
		mkRec(4, 100, "lockfree"),
	}

	sorted := table.Sorted()
	assert.Equal(t, Table{
		mkRec(4, 100, "lockfree"),
		mkRec(8, 100, "lockfree"),
		mkRec(8, 100, "msqueue"),
		mkRec(4, 500, "lockfree"),
		mkRec(16, 500, "msqueue"),
	}, sorted)

	// Original order untouched
	assert.Equal(t, mkRec(16, 500, "msqueue"), table[0])
}

func TestTableWorkloads(t *testing.T) {
	table := Table{mkRec(8, 500, "a"), mkRec(8, 100, "a"), mkRec(4, 500, "b")}
	assert.Equal(t, []int{100, 500}, table.Workloads())
}

func TestTableQueues(t *testing.T) {
	table := Table{mkRec(8, 100, "msqueue"), mkRec(4, 100, "lockfree"), mkRec(8, 100, "lockfree")}
	assert.Equal(t, []string{"lockfree", "msqueue"}, table.Queues())
}

func TestMetricsCoverAllRecordFields(t *testing.T) {
	r := Record{
		RuntimeMs:            1,
		ThroughputReqsPerSec: 2,
		LatencyMs:            3,
		AvgEnqueueMs:         4,
		AvgDequeueMs:         5,
	}
	got := make([]float64, len(Metrics))
	for i, m := range Metrics {
		got[i] = m.Value(r)
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, got)
}
