package core

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// SeedEnv names the variable GetSeed reads.
const SeedEnv = "GOMETRIC_SEED"

// GetSeed returns the seed for the randomised property tests. A property
// failure is reproduced by exporting the logged seed as GOMETRIC_SEED; when
// the variable is unset or malformed the current time is used.
func GetSeed() int64 {
	raw := strings.TrimSpace(os.Getenv(SeedEnv))
	if raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			log.Debug().Int64("seed", seed).Str("source", SeedEnv).Msg("Property test seed")
			return seed
		}
		log.Warn().Err(err).Str("value", raw).Msgf("Ignoring malformed %s", SeedEnv)
	}

	seed := time.Now().UnixNano()
	log.Info().Int64("seed", seed).Str("source", "clock").Msg("Property test seed")
	return seed
}
