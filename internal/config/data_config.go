package config

import "time"

type DataConfig interface {
	GetDataDelay() time.Duration
}

type Data struct {
	Delay time.Duration `env:"DATA_DELAY" envDefault:"0s"`
}

var _ DataConfig = Data{}

// GetDataDelay is the simulated round-trip latency of the mock data source.
func (d Data) GetDataDelay() time.Duration {
	return d.Delay
}
