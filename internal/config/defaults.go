package config

const (
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultMaxDecompressedMiB = 512
	defaultMaxTreeDepth       = 256
	defaultCachePath          = "~/.cache/soundhaus/summaries.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Limits: Limits{
			MaxDecompressedMiB: defaultMaxDecompressedMiB,
			MaxTreeDepth:       defaultMaxTreeDepth,
		},
		Cache: Cache{
			Enabled: true,
			Path:    defaultCachePath,
		},
		Diff: Diff{
			AllowTrackNameFallback: false,
		},
	}
}
