package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// RenderCharts draws one chart per (workload, metric) pair: the metric
// against the thread count, one line per queue variant.
func RenderCharts(cfg Config, table Table) error {
	grouped := table.ByWorkload()
	for _, reqs := range table.Workloads() {
		for _, m := range Metrics {
			if err := renderChart(cfg, m, reqs, grouped[reqs]); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderChart writes a single metric-vs-threads PNG for one workload.
// An empty subset produces no chart and no error.
func renderChart(cfg Config, m Metric, reqs int, subset Table) error {
	if len(subset) == 0 {
		return nil
	}

	dir := cfg.PlotDir(m.Key)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create plot directory: %w", err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs Threads (%d req/client)", m.Label, reqs)
	p.X.Label.Text = "Threads"
	p.Y.Label.Text = m.Label
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	for i, queue := range subset.Queues() {
		var qrows Table
		for _, r := range subset {
			if r.Queue == queue {
				qrows = append(qrows, r)
			}
		}
		sort.SliceStable(qrows, func(a, b int) bool { return qrows[a].Threads < qrows[b].Threads })

		pts := make(plotter.XYs, len(qrows))
		for j, r := range qrows {
			pts[j].X = float64(r.Threads)
			pts[j].Y = m.Value(r)
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("failed to build series for queue %s: %w", queue, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		p.Legend.Add(queue, line, points)
	}

	out := filepath.Join(dir, fmt.Sprintf("%s_%d.png", m.Key, reqs))
	if err := p.Save(7*vg.Inch, 5*vg.Inch, out); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", out, err)
	}

	log.Info().Str("path", out).Msg("Wrote chart")
	return nil
}
