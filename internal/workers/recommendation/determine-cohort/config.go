// internal/workers/recommendation/determine-cohort/config.go
package determinecohort

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
