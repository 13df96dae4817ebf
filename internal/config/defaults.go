package config

const (
	defaultDataDir   = "~/.local/share/flacup"
	defaultBinary    = "flac"
	defaultJobs      = 4
	defaultKeepRuns  = 100
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

var defaultExtensions = []string{"flac", "fla"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
		},
		Encoder: Encoder{
			Binary: defaultBinary,
			Jobs:   defaultJobs,
		},
		Scan: Scan{
			Extensions: append([]string{}, defaultExtensions...),
		},
		History: History{
			Enabled:  true,
			KeepRuns: defaultKeepRuns,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
