package model

import (
	"sync"

	"github.com/emrzvv/gamma-research/distribution"
	"github.com/emrzvv/gamma-research/internal/common"
	"github.com/emrzvv/gamma-research/internal/config"
	"github.com/emrzvv/gamma-research/internal/stats"
	"github.com/fschuetz04/simgo"
)

type ServerParameters struct {
	Speed          float64 // относительная производительность, 1.0 = базовая
	MaxConnections int
}

type ServerSnapshot struct {
	T           float64
	Connections int
}

func NewSnapshot(t float64, connections int) *ServerSnapshot {
	return &ServerSnapshot{
		T:           t,
		Connections: connections,
	}
}

type Server struct {
	ID                 int
	CurrentConnections int
	Parameters         *ServerParameters
	Snapshots          []*ServerSnapshot
	mu                 sync.Mutex
}

func (s *Server) AddSnapshot(t float64) {
	s.mu.Lock()
	ss := NewSnapshot(t, s.CurrentConnections)
	s.Snapshots = append(s.Snapshots, ss)
	s.mu.Unlock()
}

func (s *Server) Lock() {
	s.mu.Lock()
}

func (s *Server) Unlock() {
	s.mu.Unlock()
}

func (s *Server) IsOverLoaded() bool {
	return s.CurrentConnections >= s.Parameters.MaxConnections
}

// HandleRequest обслуживает один запрос: время обслуживания —
// гамма-распределённая величина, поделённая на производительность
// сервера. Возвращает false, если сервер перегружен.
func (s *Server) HandleRequest(
	proc simgo.Process,
	start float64,
	svc distribution.Gamma,
	st *stats.Statistics,
	rng *common.RNG) bool {

	s.mu.Lock()
	if s.CurrentConnections >= s.Parameters.MaxConnections {
		s.mu.Unlock()
		return false
	}
	s.CurrentConnections++
	s.mu.Unlock()

	duration := svc.Sample(rng) / s.Parameters.Speed
	proc.Wait(proc.Timeout(duration))

	s.mu.Lock()
	s.CurrentConnections--
	s.mu.Unlock()

	st.AddRequest(&stats.RequestEvent{
		ServerID: s.ID,
		T1:       start,
		T2:       start + duration,
		Duration: duration,
	})
	return true
}

func InitServers(cfg *config.Config, rng *common.RNG) []*Server {
	var servers []*Server
	for i := 0; i < cfg.Cluster.Servers; i++ {
		speed := RandNormal(cfg.Cluster.CapMean, cfg.Cluster.CapCV, rng)
		if speed < 0.1*cfg.Cluster.CapMean {
			speed = 0.1 * cfg.Cluster.CapMean
		}

		p := &ServerParameters{
			Speed:          speed,
			MaxConnections: cfg.Cluster.MaxConnections,
		}

		s := &Server{
			ID:                 i + 1,
			CurrentConnections: 0,
			Parameters:         p,
			Snapshots:          make([]*ServerSnapshot, 0),
			mu:                 sync.Mutex{},
		}

		servers = append(servers, s)
	}

	return servers
}
