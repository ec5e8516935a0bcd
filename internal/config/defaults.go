package config

const (
	defaultServerHost     = "http://localhost"
	defaultServerPort     = 8080
	defaultMode           = ModeDevelopment
	defaultRequestTimeout = 10
	defaultSessionPath    = "~/.config/marquee/session.json"
	defaultHistoryPath    = "~/.local/share/marquee/history.db"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Host:           defaultServerHost,
			Port:           defaultServerPort,
			Mode:           defaultMode,
			RequestTimeout: defaultRequestTimeout,
		},
		Identity: Identity{
			SessionPath: defaultSessionPath,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
