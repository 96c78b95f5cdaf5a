package simulator

import (
	"math"
	"testing"

	"github.com/emrzvv/gamma-research/distribution"
	"github.com/emrzvv/gamma-research/internal/balancer"
	"github.com/emrzvv/gamma-research/internal/common"
	"github.com/emrzvv/gamma-research/internal/config"
	"github.com/emrzvv/gamma-research/internal/model"
)

func TestRunServiceTimes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Simulation.TimeSeconds = 60
	cfg.Simulation.StepSeconds = 1
	cfg.Simulation.Seed = 7
	cfg.Traffic.BaseRPS = 50
	cfg.Service.Shape = 3
	cfg.Service.Rate = 10
	cfg.Cluster.Servers = 3
	cfg.Cluster.CapMean = 1.0
	cfg.Cluster.CapCV = 0.1
	cfg.Cluster.MaxConnections = 1000
	cfg.Balancer.Strategy = "wlc"

	svc, err := distribution.NewGamma(cfg.Service.Shape, cfg.Service.Rate)
	if err != nil {
		t.Fatal(err)
	}
	rng := common.NewRNG(cfg.Simulation.Seed)
	servers := model.InitServers(cfg, rng)
	b := balancer.NewBalancer(cfg, servers, rng)

	st := Run(cfg, svc, servers, b, rng)

	// ~60с * 50 rps пуассоновских прибытий
	if n := len(st.Arrivals); n < 2000 || n > 4000 {
		t.Fatalf("arrivals = %d, want ~3000", n)
	}
	if len(st.Requests) == 0 {
		t.Fatal("no completed requests")
	}
	for _, r := range st.Requests {
		if r.Duration <= 0 {
			t.Fatalf("non-positive duration %v", r.Duration)
		}
		if r.T2 < r.T1 {
			t.Fatalf("request ends before it starts: %+v", r)
		}
	}

	// средняя длительность близка к α/β с поправкой на скорость серверов
	sum := st.Summarize()
	if dev := math.Abs(sum.Mean-svc.Mean()) / svc.Mean(); dev > 0.25 {
		t.Errorf("mean duration %v, analytic %v (dev %.1f%%)", sum.Mean, svc.Mean(), dev*100)
	}

	for _, s := range servers {
		if len(s.Snapshots) == 0 {
			t.Errorf("server %d has no snapshots", s.ID)
		}
	}
}

func TestRunSpikes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Simulation.TimeSeconds = 30
	cfg.Simulation.StepSeconds = 1
	cfg.Simulation.Seed = 11
	cfg.Traffic.BaseRPS = 20
	cfg.Service.Shape = 1
	cfg.Service.Rate = 100
	cfg.Cluster.Servers = 2
	cfg.Cluster.CapMean = 1.0
	cfg.Cluster.CapCV = 0.1
	cfg.Cluster.MaxConnections = 1000
	cfg.Balancer.Strategy = "random"
	cfg.Spikes = []struct {
		At       float64 `yaml:"at"`
		Duration float64 `yaml:"duration"`
		Factor   float64 `yaml:"factor"`
	}{
		{At: 10, Duration: 10, Factor: 5},
	}

	svc, err := distribution.NewGamma(cfg.Service.Shape, cfg.Service.Rate)
	if err != nil {
		t.Fatal(err)
	}
	rng := common.NewRNG(cfg.Simulation.Seed)
	servers := model.InitServers(cfg, rng)
	b := balancer.NewBalancer(cfg, servers, rng)

	st := Run(cfg, svc, servers, b, rng)

	var before, during int
	for _, a := range st.Arrivals {
		switch {
		case a.T < 10:
			before++
		case a.T < 20:
			during++
		}
	}
	// всплеск x5 должен быть виден в количестве прибытий
	if during < 2*before {
		t.Errorf("spike not visible: before=%d during=%d", before, during)
	}
}
