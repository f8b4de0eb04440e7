// internal/workers/recommendation/validate-profile/config.go
package validateprofile

import "time"

type Config struct {
	Timeout time.Duration

	// Strict makes schema violations fail the job instead of being
	// reported in the output.
	Strict bool
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
		Strict:  false,
	}
}
