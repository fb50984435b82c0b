package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file.
const DefaultPath = "versematch.yaml"

// Config holds all versematch configuration.
type Config struct {
	// Corpora in search priority order
	Corpora []CorpusConfig `yaml:"corpora"`

	// Scoring thresholds, boosts and overlap cut-offs
	Matching MatchingConfig `yaml:"matching"`

	// Backing stores for non-file sources
	Storage StorageConfig `yaml:"storage"`

	// HTTP front end
	Server ServerConfig `yaml:"server"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// Corpus sources.
const (
	SourceJSON     = "json"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
	SourceBolt     = "bolt"
)

// ValidSources lists the supported corpus sources.
var ValidSources = []string{SourceJSON, SourceSQLite, SourcePostgres, SourceBolt}

// ValidShapes lists the supported expected verse shapes.
var ValidShapes = []string{"aphorism", "narrative", "none"}

// CorpusConfig describes one corpus and where it is persisted.
type CorpusConfig struct {
	Key    string `yaml:"key"`
	Title  string `yaml:"title"`  // used when the stored metadata has none
	Author string `yaml:"author"` // used when the stored metadata has none
	Shape  string `yaml:"shape"`  // aphorism, narrative, none

	// Source selects the loader. Path is the JSON file for "json"; other
	// sources read the store configured under storage.
	Source string `yaml:"source"`
	Path   string `yaml:"path,omitempty"`
}

// StorageConfig configures the database-backed corpus sources.
type StorageConfig struct {
	DataDir     string `yaml:"data_dir"`
	SQLitePath  string `yaml:"sqlite_path"`
	PostgresDSN string `yaml:"postgres_dsn"`
	BoltPath    string `yaml:"bolt_path"`
	LoadTimeout string `yaml:"load_timeout"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeout     string `yaml:"read_timeout"`
	WriteTimeout    string `yaml:"write_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	MaxBatch        int    `yaml:"max_batch"`
	MaxBodyBytes    int64  `yaml:"max_body_bytes"`
}

// DefaultConfig returns the built-in configuration: the two classical corpora
// read from JSON files under ./data.
func DefaultConfig() *Config {
	return &Config{
		Corpora: []CorpusConfig{
			{
				Key:    "thirukkural",
				Title:  "திருக்குறள்",
				Author: "திருவள்ளுவர்",
				Shape:  "aphorism",
				Source: SourceJSON,
				Path:   "data/thirukkural.json",
			},
			{
				Key:    "kamba_ramayanam",
				Title:  "கம்ப ராமாயணம்",
				Author: "கம்பர்",
				Shape:  "narrative",
				Source: SourceJSON,
				Path:   "data/kamba_ramayanam.json",
			},
		},

		Matching: DefaultMatchingConfig(),

		Storage: StorageConfig{
			DataDir:     "data",
			SQLitePath:  "data/versematch.db",
			BoltPath:    "data/versematch.bolt",
			LoadTimeout: "30s",
		},

		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     "10s",
			WriteTimeout:    "30s",
			ShutdownTimeout: "5s",
			MaxBatch:        100,
			MaxBodyBytes:    1 << 20,
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("VERSEMATCH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("VERSEMATCH_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("VERSEMATCH_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("VERSEMATCH_DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
	if v := os.Getenv("VERSEMATCH_SQLITE_PATH"); v != "" {
		c.Storage.SQLitePath = v
	}
	if v := os.Getenv("VERSEMATCH_BOLT_PATH"); v != "" {
		c.Storage.BoltPath = v
	}

	// Postgres DSN: the generic DATABASE_URL is overridden by the specific one
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Storage.PostgresDSN = v
	}
	if v := os.Getenv("VERSEMATCH_POSTGRES_DSN"); v != "" {
		c.Storage.PostgresDSN = v
	}

	c.Matching.Strict.Threshold = getenvInt("VERSEMATCH_STRICT_THRESHOLD", c.Matching.Strict.Threshold)
	c.Server.MaxBatch = getenvInt("VERSEMATCH_MAX_BATCH", c.Server.MaxBatch)
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Validate checks the configuration for values the engine cannot run with.
func (c *Config) Validate() error {
	if len(c.Corpora) == 0 {
		return fmt.Errorf("no corpora configured")
	}

	seen := make(map[string]bool, len(c.Corpora))
	for i, corpus := range c.Corpora {
		if corpus.Key == "" {
			return fmt.Errorf("corpus %d: key is required", i)
		}
		if seen[corpus.Key] {
			return fmt.Errorf("corpus %s: duplicate key", corpus.Key)
		}
		seen[corpus.Key] = true

		if !contains(ValidShapes, corpus.Shape) {
			return fmt.Errorf("corpus %s: invalid shape %q (valid: %v)", corpus.Key, corpus.Shape, ValidShapes)
		}
		if !contains(ValidSources, corpus.Source) {
			return fmt.Errorf("corpus %s: invalid source %q (valid: %v)", corpus.Key, corpus.Source, ValidSources)
		}
		if corpus.Source == SourceJSON && corpus.Path == "" {
			return fmt.Errorf("corpus %s: json source requires a path", corpus.Key)
		}
		if corpus.Source == SourcePostgres && c.Storage.PostgresDSN == "" {
			return fmt.Errorf("corpus %s: postgres source requires storage.postgres_dsn", corpus.Key)
		}
	}

	if err := c.Matching.Validate(); err != nil {
		return fmt.Errorf("matching: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if c.Server.MaxBatch <= 0 {
		return fmt.Errorf("server: max_batch must be positive")
	}
	return nil
}

// GetReadTimeout returns the server read timeout as a duration.
func (c *Config) GetReadTimeout() time.Duration {
	return parseDuration(c.Server.ReadTimeout, 10*time.Second)
}

// GetWriteTimeout returns the server write timeout as a duration.
func (c *Config) GetWriteTimeout() time.Duration {
	return parseDuration(c.Server.WriteTimeout, 30*time.Second)
}

// GetShutdownTimeout returns the graceful shutdown budget.
func (c *Config) GetShutdownTimeout() time.Duration {
	return parseDuration(c.Server.ShutdownTimeout, 5*time.Second)
}

// GetLoadTimeout bounds the startup corpus load.
func (c *Config) GetLoadTimeout() time.Duration {
	return parseDuration(c.Storage.LoadTimeout, 30*time.Second)
}

// Corpus returns the configuration of one corpus by key.
func (c *Config) Corpus(key string) (CorpusConfig, bool) {
	for _, corpus := range c.Corpora {
		if corpus.Key == key {
			return corpus, true
		}
	}
	return CorpusConfig{}, false
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
