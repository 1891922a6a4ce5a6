package config

const (
	defaultSessionDir     = "~/.local/share/subfix"
	defaultLogDir         = "~/.local/share/subfix/logs"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultMaxTotalChars  = 74
	defaultMaxLineChars   = 37
	defaultMinDurationSec = 1.0
	defaultMaxDurationSec = 7.0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SessionDir: defaultSessionDir,
			LogDir:     defaultLogDir,
		},
		Limits: Limits{
			MaxTotalChars:      defaultMaxTotalChars,
			MaxLineChars:       defaultMaxLineChars,
			MinDurationSeconds: defaultMinDurationSec,
			MaxDurationSeconds: defaultMaxDurationSec,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
