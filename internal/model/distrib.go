package model

import (
	"github.com/emrzvv/gamma-research/distribution"
	"github.com/emrzvv/gamma-research/internal/common"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandGamma выдаёт гамма-распределённую величину, параметризованную
// средним и CV: k = 1/cv², θ = mean/k.
func RandGamma(mean, cv float64, rng *common.RNG) float64 {
	if cv <= 0 {
		panic("cv must be > 0")
	}

	k := 1.0 / (cv * cv)
	theta := mean / k

	return distribution.SampleGamma(rng, k, 1.0/theta)
}

func RandNormal(mean, cv float64, rng *common.RNG) float64 {
	n := distuv.Normal{
		Mu:    mean,
		Sigma: mean * cv,
		Src:   rng,
	}

	return n.Rand()
}
