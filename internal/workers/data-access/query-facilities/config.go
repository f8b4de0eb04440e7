// internal/workers/data-access/query-facilities/config.go
package queryfacilities

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
