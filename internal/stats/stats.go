package stats

import (
	"math"
	"sort"
	"sync"

	"github.com/emrzvv/gamma-research/internal/config"
	"gonum.org/v1/gonum/stat"
)

type Statistics struct {
	mu       sync.Mutex
	Arrivals []*ArrivalEvent
	Requests []*RequestEvent
	Drops    []*DropEvent
	Picks    []int
}

type ArrivalEvent struct {
	T         float64
	RequestID int64
}

type RequestEvent struct {
	ServerID int
	T1       float64
	T2       float64
	Duration float64
}

type DropEvent struct {
	ServerID  int
	RequestID int64
	T         float64
	Reason    string
}

func NewStatistics(cfg *config.Config) *Statistics {
	return &Statistics{
		mu:       sync.Mutex{},
		Arrivals: make([]*ArrivalEvent, 0),
		Requests: make([]*RequestEvent, 0),
		Drops:    make([]*DropEvent, 0),
		Picks:    make([]int, cfg.Cluster.Servers),
	}
}

func (st *Statistics) AddArrival(ae *ArrivalEvent) {
	st.mu.Lock()
	st.Arrivals = append(st.Arrivals, ae)
	st.mu.Unlock()
}

func (st *Statistics) AddPick(id int) {
	st.mu.Lock()
	st.Picks[id]++
	st.mu.Unlock()
}

func (st *Statistics) AddDrop(de *DropEvent) {
	st.mu.Lock()
	st.Drops = append(st.Drops, de)
	st.mu.Unlock()
}

func (st *Statistics) AddRequest(re *RequestEvent) {
	st.mu.Lock()
	st.Requests = append(st.Requests, re)
	st.mu.Unlock()
}

func (st *Statistics) Durations() []float64 {
	st.mu.Lock()
	ds := make([]float64, 0, len(st.Requests))
	for _, r := range st.Requests {
		ds = append(ds, r.Duration)
	}
	st.mu.Unlock()
	return ds
}

// Summary — эмпирические моменты и квантили времён обслуживания.
type Summary struct {
	N        int
	Mean     float64
	Variance float64
	StdDev   float64
	P50      float64
	P95      float64
	P99      float64
}

func (st *Statistics) Summarize() Summary {
	ds := st.Durations()
	if len(ds) == 0 {
		return Summary{}
	}
	sort.Float64s(ds)

	variance := stat.Variance(ds, nil)
	return Summary{
		N:        len(ds),
		Mean:     stat.Mean(ds, nil),
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		P50:      stat.Quantile(0.50, stat.Empirical, ds, nil),
		P95:      stat.Quantile(0.95, stat.Empirical, ds, nil),
		P99:      stat.Quantile(0.99, stat.Empirical, ds, nil),
	}
}
