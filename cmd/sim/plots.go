package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/emrzvv/gamma-research/distribution"
	"github.com/emrzvv/gamma-research/internal/config"
	"github.com/emrzvv/gamma-research/internal/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func renderPlots(
	cfg *config.Config,
	svc distribution.Gamma,
	st *stats.Statistics,
	samples []float64,
	dir string) {

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Print("plot error: ", err)
		return
	}

	counts := aggregateArrivals(st.Arrivals, cfg.Simulation.StepSeconds, cfg.Simulation.TimeSeconds)
	if err := plotArrivals(counts, cfg.Simulation.StepSeconds, dir+"/arrivals_ts.png"); err != nil {
		log.Print("plot error: ", err)
	}
	if err := plotCurve(svc.Prob, svc, "Плотность", "f(x)", dir+"/density.png"); err != nil {
		log.Print("plot error: ", err)
	}
	if err := plotCurve(svc.CDF, svc, "Функция распределения", "F(x)", dir+"/cdf.png"); err != nil {
		log.Print("plot error: ", err)
	}
	if err := plotHistogram(svc, samples, cfg.Sampling.HistBins, dir+"/hist.png"); err != nil {
		log.Print("plot error: ", err)
	}
}

func aggregateArrivals(events []*stats.ArrivalEvent, step, horizon float64) []float64 {
	buckets := int(math.Ceil(horizon / step))
	counts := make([]float64, buckets)

	for _, event := range events {
		index := int(event.T / step)
		if index < buckets {
			counts[index] += 1
		}
	}
	return counts
}

func plotArrivals(counts []float64, step float64, file string) error {
	pts := make(plotter.XYs, len(counts))
	for i, c := range counts {
		pts[i].X = float64(i) * step
		pts[i].Y = c
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Количество запросов за шаг (%.0f с)", step)
	p.X.Label.Text = "Время (с)"
	p.Y.Label.Text = "Количество запросов"
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, file)
}

// верхняя граница графиков: хвост правее mean+4σ пренебрежимо мал
func plotUpper(svc distribution.Gamma) float64 {
	return svc.Mean() + 4*svc.StdDev()
}

func curvePoints(f func(float64) float64, xmax float64, n int) plotter.XYs {
	pts := make(plotter.XYs, n+1)
	for i := 0; i <= n; i++ {
		x := xmax * float64(i) / float64(n)
		pts[i].X = x
		pts[i].Y = f(x)
	}
	return pts
}

func plotCurve(f func(float64) float64, svc distribution.Gamma, title, ylabel, file string) error {
	pts := curvePoints(f, plotUpper(svc), 400)
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Gamma(α=%.2f, β=%.2f)", title, svc.Shape(), svc.Rate())
	p.X.Label.Text = "x"
	p.Y.Label.Text = ylabel
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, file)
}

func plotHistogram(svc distribution.Gamma, samples []float64, bins int, file string) error {
	h, err := plotter.NewHist(plotter.Values(samples), bins)
	if err != nil {
		return err
	}
	h.Normalize(1)

	pdf := curvePoints(svc.Prob, plotUpper(svc), 400)
	line, err := plotter.NewLine(pdf)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Выборка Gamma(α=%.2f, β=%.2f), n=%d", svc.Shape(), svc.Rate(), len(samples))
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.Add(h, line)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, file)
}
