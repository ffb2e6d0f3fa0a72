package core

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// DebugEnv selects the global log level: "off" or "0" disables logging,
// "full" enables debug output, anything else keeps info.
const DebugEnv = "DEBUG_GOMETRIC"

// init applies the log level from DebugEnv.
func init() {
	ConfigureLogging()
}

// ConfigureLogging sets the zerolog global level from the DebugEnv variable.
func ConfigureLogging() {
	debugMode := strings.TrimSpace(strings.ToLower(os.Getenv(DebugEnv)))

	switch debugMode {
	case "off", "0":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "full":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
