package simulator

import (
	"sync"

	"github.com/emrzvv/gamma-research/distribution"
	"github.com/emrzvv/gamma-research/internal/balancer"
	"github.com/emrzvv/gamma-research/internal/common"
	"github.com/emrzvv/gamma-research/internal/config"
	"github.com/emrzvv/gamma-research/internal/model"
	"github.com/emrzvv/gamma-research/internal/stats"
	"github.com/fschuetz04/simgo"
)

type rateCtrl struct {
	mu      sync.RWMutex
	base    float64
	current float64
}

func (r *rateCtrl) Get() float64 {
	r.mu.RLock()
	v := r.current
	r.mu.RUnlock()
	return v
}

func (r *rateCtrl) Set(v float64) {
	r.mu.Lock()
	r.current = v
	r.mu.Unlock()
}

func Run(
	cfg *config.Config,
	svc distribution.Gamma,
	servers []*model.Server,
	balancer balancer.Balancer,
	rng *common.RNG) *stats.Statistics {

	simulation := simgo.NewSimulation()
	statistics := stats.NewStatistics(cfg)

	rc := &rateCtrl{base: cfg.Traffic.BaseRPS, current: cfg.Traffic.BaseRPS}

	simulation.Process(func(proc simgo.Process) { collectSnapshots(proc, cfg, servers) })
	simulation.Process(func(proc simgo.Process) { generateSpikes(proc, cfg, rc) })
	simulation.Process(func(proc simgo.Process) {
		generateRequests(proc, simulation, cfg, rc, svc, balancer, statistics, rng)
	})

	simulation.RunUntil(cfg.Simulation.TimeSeconds)
	return statistics
}
