package main

import (
	"flag"
	"log"

	"github.com/emrzvv/gamma-research/distribution"
	"github.com/emrzvv/gamma-research/internal/balancer"
	"github.com/emrzvv/gamma-research/internal/common"
	"github.com/emrzvv/gamma-research/internal/config"
	"github.com/emrzvv/gamma-research/internal/export"
	"github.com/emrzvv/gamma-research/internal/model"
	"github.com/emrzvv/gamma-research/internal/simulator"
)

func main() {
	cfgPath := flag.String("cfg", "./config/default.yaml", "path to config")
	outDir := flag.String("out", "./csv", "output directory for csv")
	plotDir := flag.String("plots", "./results", "output directory for plots")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	svc, err := distribution.NewGamma(cfg.Service.Shape, cfg.Service.Rate)
	if err != nil {
		log.Fatal(err)
	}

	rng := common.NewRNG(cfg.Simulation.Seed)
	servers := model.InitServers(cfg, rng)
	b := balancer.NewBalancer(cfg, servers, rng)

	st := simulator.Run(cfg, svc, servers, b, rng)

	if err := export.ToCSV(*outDir, st, servers, svc); err != nil {
		log.Fatal(err)
	}

	samples := make([]float64, cfg.Sampling.Draws)
	for i := range samples {
		samples[i] = svc.Sample(rng)
	}
	if err := export.WriteSamples(*outDir+"/samples.csv", samples); err != nil {
		log.Fatal(err)
	}

	renderPlots(cfg, svc, st, samples, *plotDir)
}
