package config

import (
	"slices"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Datasets  DatasetsConfig  `yaml:"datasets" mapstructure:"datasets"`
	Fetch     FetchConfig     `yaml:"fetch" mapstructure:"fetch"`
	Selection SelectionConfig `yaml:"selection" mapstructure:"selection"`
	Ranking   RankingConfig   `yaml:"ranking" mapstructure:"ranking"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Metrics   MetricsConfig   `yaml:"metrics" mapstructure:"metrics"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// DatasetsConfig locates the two open-data tables. ExamResultsFile and
// GeolocationFile point at local copies and bypass the download cache.
type DatasetsConfig struct {
	CacheDir        string `yaml:"cache_dir" mapstructure:"cache_dir"`
	ExamResultsURL  string `yaml:"exam_results_url" mapstructure:"exam_results_url"`
	GeolocationURL  string `yaml:"geolocation_url" mapstructure:"geolocation_url"`
	ExamResultsFile string `yaml:"exam_results_file" mapstructure:"exam_results_file"`
	GeolocationFile string `yaml:"geolocation_file" mapstructure:"geolocation_file"`
	SchemaFile      string `yaml:"schema_file" mapstructure:"schema_file"`
	Charset         string `yaml:"charset" mapstructure:"charset"`
	Delimiter       string `yaml:"delimiter" mapstructure:"delimiter"`
}

// FetchConfig configures dataset downloads.
type FetchConfig struct {
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries  int     `yaml:"max_retries" mapstructure:"max_retries"`
	RatePerSec  float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	UserAgent   string  `yaml:"user_agent" mapstructure:"user_agent"`
}

// SelectionConfig holds the default search thresholds.
type SelectionConfig struct {
	Session        int     `yaml:"session" mapstructure:"session"`
	Level          string  `yaml:"level" mapstructure:"level"`
	MinSuccessRate float64 `yaml:"min_success_rate" mapstructure:"min_success_rate"`
	MinHonorsRate  float64 `yaml:"min_honors_rate" mapstructure:"min_honors_rate"`
}

// RankingConfig tunes the sort.
type RankingConfig struct {
	DepartmentPriorityAscending bool `yaml:"department_priority_ascending" mapstructure:"department_priority_ascending"`
}

// OutputConfig configures the ranked table output.
type OutputConfig struct {
	Path    string `yaml:"path" mapstructure:"path"`
	Format  string `yaml:"format" mapstructure:"format"`
	GeoJSON string `yaml:"geojson" mapstructure:"geojson"`
}

// MetricsConfig configures run metrics and alerting.
type MetricsConfig struct {
	File                    string  `yaml:"file" mapstructure:"file"`
	WebhookURL              string  `yaml:"webhook_url" mapstructure:"webhook_url"`
	UnrankableRateThreshold float64 `yaml:"unrankable_rate_threshold" mapstructure:"unrankable_rate_threshold"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// OutputFormats lists the accepted output.format values.
var OutputFormats = []string{"csv", "xlsx", "sqlite"}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("COLLEGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("datasets.cache_dir", "data")
	v.SetDefault("datasets.exam_results_url", "")
	v.SetDefault("datasets.geolocation_url", "")
	v.SetDefault("datasets.exam_results_file", "")
	v.SetDefault("datasets.geolocation_file", "")
	v.SetDefault("datasets.schema_file", "")
	v.SetDefault("datasets.charset", "utf-8")
	v.SetDefault("datasets.delimiter", ";")
	v.SetDefault("fetch.timeout_secs", 300)
	v.SetDefault("fetch.max_retries", 3)
	v.SetDefault("fetch.rate_per_sec", 2.0)
	v.SetDefault("fetch.user_agent", "college-cli/1.0")
	v.SetDefault("selection.session", 2020)
	v.SetDefault("selection.level", "COLLEGE")
	v.SetDefault("selection.min_success_rate", 97.0)
	v.SetDefault("selection.min_honors_rate", 0.1)
	v.SetDefault("ranking.department_priority_ascending", false)
	v.SetDefault("output.path", "")
	v.SetDefault("output.format", "csv")
	v.SetDefault("output.geojson", "")
	v.SetDefault("metrics.file", "")
	v.SetDefault("metrics.webhook_url", "")
	v.SetDefault("metrics.unrankable_rate_threshold", 0.25)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command needs. mode is the command name;
// "select" additionally checks thresholds and the output format.
func (c *Config) Validate(mode string) error {
	var problems []string

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, "log.level "+c.Log.Level+" is invalid")
	}
	if c.Datasets.CacheDir == "" && (c.Datasets.ExamResultsFile == "" || c.Datasets.GeolocationFile == "") {
		problems = append(problems, "datasets.cache_dir is required")
	}
	if c.Fetch.MaxRetries < 0 {
		problems = append(problems, "fetch.max_retries must not be negative")
	}
	if c.Fetch.RatePerSec <= 0 {
		problems = append(problems, "fetch.rate_per_sec must be positive")
	}
	if len([]rune(c.Datasets.Delimiter)) > 1 {
		problems = append(problems, "datasets.delimiter must be a single character")
	}

	switch mode {
	case "select":
		if c.Selection.MinSuccessRate < 0 || c.Selection.MinSuccessRate > 100 {
			problems = append(problems, "selection.min_success_rate must be in [0,100]")
		}
		if c.Selection.MinHonorsRate < 0 || c.Selection.MinHonorsRate > 1 {
			problems = append(problems, "selection.min_honors_rate must be in [0,1]")
		}
		if c.Selection.Session <= 0 {
			problems = append(problems, "selection.session is required")
		}
		if !slices.Contains(OutputFormats, strings.ToLower(c.Output.Format)) {
			problems = append(problems, "output.format must be one of "+strings.Join(OutputFormats, ", "))
		}
		if c.Metrics.UnrankableRateThreshold < 0 || c.Metrics.UnrankableRateThreshold > 1 {
			problems = append(problems, "metrics.unrankable_rate_threshold must be in [0,1]")
		}
	}

	if len(problems) > 0 {
		return eris.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
