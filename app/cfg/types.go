package cfg

type Cfg struct {
	// Storage configuration
	DBPath string

	// Application configuration
	SourcesDir        string
	Port              string
	WorkerCount       int
	SchedulerInterval int
	APIAccessKey      string

	// Upstream services
	TranslateEndpoint string
	NewsAPIKey        string
	CacheDir          string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
