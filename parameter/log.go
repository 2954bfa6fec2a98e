package parameter

// File logging, the terminal is owned by the screen so nothing goes to stdout/stderr
const (
	LogDir      = "logs"
	LogFileName = "spacefolio.log"
	LogLevel    = "info"

	// LogMaxSize rotates the log file on startup once it exceeds this many bytes
	LogMaxSize = 10 * 1024 * 1024
)

// ConfigEnvPrefix prefixes environment overrides, e.g. SPACEFOLIO_FLIGHT_MAXSPEED
const ConfigEnvPrefix = "SPACEFOLIO"
