package balancer

import (
	"sync"

	"github.com/emrzvv/gamma-research/internal/model"
)

type RRBalancer struct {
	servers []*model.Server
	mu      sync.Mutex
	idx     int
}

func (b *RRBalancer) PickServer(_ int64) *model.Server {
	b.mu.Lock()
	s := b.servers[b.idx]
	b.idx = (b.idx + 1) % len(b.servers)
	b.mu.Unlock()
	return s
}

func (b *RRBalancer) GetServers() []*model.Server {
	return b.servers
}
