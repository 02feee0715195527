package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	HTTP   HTTPConfig   `yaml:"http" mapstructure:"http"`
	Fontes FontesConfig `yaml:"fontes" mapstructure:"fontes"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// HTTPConfig configures the outbound HTTP fetcher.
type HTTPConfig struct {
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries  int    `yaml:"max_retries" mapstructure:"max_retries"`
}

// FontesConfig overrides the upstream data source locations. Empty fields
// keep each client's production default, so a zero config works offline
// of any file.
type FontesConfig struct {
	SGS        string `yaml:"sgs" mapstructure:"sgs"`
	Ipeadata   string `yaml:"ipeadata" mapstructure:"ipeadata"`
	Senado     string `yaml:"senado" mapstructure:"senado"`
	Catalogo   string `yaml:"catalogo" mapstructure:"catalogo"`
	GeoJSON    string `yaml:"geojson" mapstructure:"geojson"`
	Municipios string `yaml:"municipios" mapstructure:"municipios"`
	Eleitorado string `yaml:"eleitorado" mapstructure:"eleitorado"`
	Wikimedia  string `yaml:"wikimedia" mapstructure:"wikimedia"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("DADOSBR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("http.user_agent", "dadosbr/1.0")
	v.SetDefault("http.timeout_secs", 30)
	v.SetDefault("http.max_retries", 3)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)

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

// Validate checks settings that every command depends on. Commands that
// start the API server should also check Server.Port themselves if they
// override it from flags.
func (c *Config) Validate() error {
	var problems []string

	if c.HTTP.TimeoutSecs <= 0 {
		problems = append(problems, "http.timeout_secs must be > 0")
	}
	if c.HTTP.MaxRetries < 0 {
		problems = append(problems, "http.max_retries must be >= 0")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, "server.port must be between 1 and 65535")
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
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
