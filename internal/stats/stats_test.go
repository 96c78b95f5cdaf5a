package stats

import (
	"math"
	"testing"

	"github.com/emrzvv/gamma-research/internal/config"
)

func TestSummarize(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cluster.Servers = 2
	st := NewStatistics(cfg)

	for i, d := range []float64{1.0, 2.0, 3.0, 4.0} {
		st.AddRequest(&RequestEvent{ServerID: i%2 + 1, Duration: d})
	}

	sum := st.Summarize()
	if sum.N != 4 {
		t.Fatalf("N = %d, want 4", sum.N)
	}
	if math.Abs(sum.Mean-2.5) > 1e-12 {
		t.Errorf("Mean = %v, want 2.5", sum.Mean)
	}
	// несмещённая выборочная дисперсия
	if want := 5.0 / 3.0; math.Abs(sum.Variance-want) > 1e-12 {
		t.Errorf("Variance = %v, want %v", sum.Variance, want)
	}
	if math.Abs(sum.StdDev-math.Sqrt(sum.Variance)) > 1e-12 {
		t.Errorf("StdDev = %v, want sqrt(%v)", sum.StdDev, sum.Variance)
	}
	if sum.P50 > sum.P95 || sum.P95 > sum.P99 {
		t.Errorf("quantiles not ordered: p50=%v p95=%v p99=%v", sum.P50, sum.P95, sum.P99)
	}
	if sum.P50 < 1.0 || sum.P99 > 4.0 {
		t.Errorf("quantiles out of sample range: p50=%v p99=%v", sum.P50, sum.P99)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cluster.Servers = 1
	if sum := NewStatistics(cfg).Summarize(); sum.N != 0 || sum.Mean != 0 {
		t.Fatalf("empty summary = %+v", sum)
	}
}
