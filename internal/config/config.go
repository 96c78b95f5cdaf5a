package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Simulation struct {
		TimeSeconds float64 `yaml:"time_seconds"` // общая продолжительность симуляции
		StepSeconds float64 `yaml:"step_seconds"` // шаг симуляции (для сбора snapshot'ов, построения графиков)
		Seed        int64   `yaml:"seed"`
	} `yaml:"simulation"`

	Traffic struct {
		BaseRPS float64 `yaml:"base_rps"` // rps, \lambda Пуассона
	} `yaml:"traffic"`

	Spikes []struct {
		At       float64 `yaml:"at"`       // секунда старта
		Duration float64 `yaml:"duration"` // длительность
		Factor   float64 `yaml:"factor"`   // множитель к base_rps
	} `yaml:"spikes"`

	Service struct {
		Shape float64 `yaml:"shape"` // α гамма-распределения времени обслуживания
		Rate  float64 `yaml:"rate"`  // β, 1/секунд
	} `yaml:"service"`

	Cluster struct {
		Servers int `yaml:"servers"` // кол-во серверов

		CapMean float64 `yaml:"cap_mean"` // средняя производительность сервера (вес)
		CapCV   float64 `yaml:"cap_cv"`   // относительное ст. отклонение производительности

		MaxConnections int `yaml:"max_connections"` // лимит одновременных запросов на сервер
	} `yaml:"cluster"`

	Balancer struct {
		Strategy string `yaml:"strategy"`
	} `yaml:"balancer"`

	Sampling struct {
		Draws    int `yaml:"draws"`     // кол-во выборок для samples.csv и гистограммы
		HistBins int `yaml:"hist_bins"` // кол-во корзин гистограммы
	} `yaml:"sampling"`
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error when parsing config: %w", err)
	}

	fillDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("error when validating config: %w", err)
	}
	return &cfg, nil
}

func fillDefaults(c *Config) {
	if c.Simulation.TimeSeconds == 0 {
		c.Simulation.TimeSeconds = 600
	}
	if c.Simulation.StepSeconds == 0 {
		c.Simulation.StepSeconds = 1
	}
	if c.Simulation.Seed == 0 {
		c.Simulation.Seed = time.Now().UnixNano()
	}
	if c.Traffic.BaseRPS == 0 {
		c.Traffic.BaseRPS = 200
	}
	if c.Service.Shape == 0 {
		c.Service.Shape = 3
	}
	if c.Service.Rate == 0 {
		c.Service.Rate = 10
	}
	if c.Cluster.Servers == 0 {
		c.Cluster.Servers = 5
	}
	if c.Cluster.CapMean == 0 {
		c.Cluster.CapMean = 1.0
	}
	if c.Cluster.CapCV == 0 {
		c.Cluster.CapCV = 0.2
	}
	if c.Cluster.MaxConnections == 0 {
		c.Cluster.MaxConnections = 100
	}
	if c.Balancer.Strategy == "" {
		c.Balancer.Strategy = "wlc"
	}
	if c.Sampling.Draws == 0 {
		c.Sampling.Draws = 100_000
	}
	if c.Sampling.HistBins == 0 {
		c.Sampling.HistBins = 60
	}
}

func validate(cfg *Config) error {
	if cfg.Service.Shape <= 0 || cfg.Service.Rate <= 0 {
		return fmt.Errorf("service: shape and rate must be > 0, got shape=%v rate=%v",
			cfg.Service.Shape, cfg.Service.Rate)
	}
	if cfg.Cluster.CapCV <= 0 {
		return fmt.Errorf("cluster: cap_cv must be > 0, got %v", cfg.Cluster.CapCV)
	}
	return nil
}
