package balancer

import (
	"sync"

	"github.com/emrzvv/gamma-research/internal/common"
	"github.com/emrzvv/gamma-research/internal/config"
	"github.com/emrzvv/gamma-research/internal/model"
)

type Balancer interface {
	PickServer(requestID int64) *model.Server
	GetServers() []*model.Server
}

func NewBalancer(cfg *config.Config, servers []*model.Server, rng *common.RNG) Balancer {
	switch cfg.Balancer.Strategy {
	case "rr":
		return &RRBalancer{
			servers: servers,
			mu:      sync.Mutex{},
			idx:     0,
		}
	case "random":
		return &RandomBalancer{
			servers: servers,
			rng:     rng,
		}
	case "p2c":
		return NewP2CBalancer(servers, rng)
	case "wlc":
		return NewWLCBalancer(servers)
	default:
		panic("no such strategy has been implemented")
	}
}
