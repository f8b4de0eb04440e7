// internal/workers/recommendation/match-facilities/config.go
package matchfacilities

import "time"

type Config struct {
	Timeout time.Duration

	// StrictCatalog turns unparseable catalog entries into a job error
	// instead of skipping them.
	StrictCatalog bool
}

func LoadConfig() *Config {
	return &Config{
		Timeout:       10 * time.Second,
		StrictCatalog: false,
	}
}
