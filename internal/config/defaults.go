package config

const (
	defaultPublishDir     = "~/.local/share/lineuplens/publish"
	defaultOutDir         = "~/.local/share/lineuplens/out"
	defaultLogDir         = "~/.local/share/lineuplens/logs"
	defaultCatalogDB      = "~/.local/share/lineuplens/catalog.db"
	defaultAPIBaseURL     = "https://www.xmltvlistings.com"
	defaultAPITimeoutSecs = 600
	defaultPrecision      = 4
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			PublishDir: defaultPublishDir,
			OutDir:     defaultOutDir,
			LogDir:     defaultLogDir,
			CatalogDB:  defaultCatalogDB,
		},
		API: API{
			BaseURL:        defaultAPIBaseURL,
			TimeoutSeconds: defaultAPITimeoutSecs,
		},
		Analysis: Analysis{
			Precision: defaultPrecision,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
