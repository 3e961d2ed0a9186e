// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultMaxRequestSize caps request bodies, screenshots included (5MB).
	DefaultMaxRequestSize = 5 << 20

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28

	// DefaultSessionTTL is how long a login stays valid.
	DefaultSessionTTL = 24 * time.Hour

	// DefaultSummarySentences is the summary length when the caller gives none.
	DefaultSummarySentences = 1

	// DefaultSummaryMaxSentences caps caller-requested summary lengths.
	DefaultSummaryMaxSentences = 10

	// DefaultSummaryConcurrency bounds parallel work in batch summaries.
	DefaultSummaryConcurrency = 4
)

// Environment variable prefix for overrides.
const envPrefix = "APP_"

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Session   SessionConfig   `koanf:"session"   validate:"required"`
	Admin     AdminConfig     `koanf:"admin"     validate:"required"`
	Storage   StorageConfig   `koanf:"storage"   validate:"required"`
	Uploads   UploadsConfig   `koanf:"uploads"   validate:"required"`
	Analysis  AnalysisConfig  `koanf:"analysis"  validate:"required"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
	CORS            CORSConfig    `koanf:"cors"`
}

// CORSConfig lists browser origins allowed to call the API with credentials.
type CORSConfig struct {
	AllowedOrigins []string      `koanf:"allowed_origins" validate:"dive,required"`
	MaxAge         time.Duration `koanf:"max_age"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// SessionConfig controls the signed session cookie.
type SessionConfig struct {
	CookieName string        `koanf:"cookie_name" validate:"required"`
	Secret     string        `koanf:"secret"      validate:"required,min=32"`
	TTL        time.Duration `koanf:"ttl"         validate:"required,min=1m"`
	Secure     bool          `koanf:"secure"`
	Issuer     string        `koanf:"issuer"      validate:"required"`
}

// AdminConfig holds the single administrator credential.
type AdminConfig struct {
	Username string `koanf:"username" validate:"required"`
	Password string `koanf:"password" validate:"required,min=8"`
}

// StorageConfig selects the repository backend.
type StorageConfig struct {
	Driver     string `koanf:"driver"      validate:"required,oneof=memory sqlite postgres"`
	DSN        string `koanf:"dsn"         validate:"required_unless=Driver memory"`
	LogQueries bool   `koanf:"log_queries"`
}

// UploadsConfig controls where screenshots are stored.
type UploadsConfig struct {
	Dir               string   `koanf:"dir"                validate:"required"`
	AllowedExtensions []string `koanf:"allowed_extensions"`
}

// AnalysisConfig groups the text analysis settings.
type AnalysisConfig struct {
	Sentiment SentimentConfig `koanf:"sentiment" validate:"required"`
	Summary   SummaryConfig   `koanf:"summary"   validate:"required"`
}

// SentimentConfig is the classifier lexicon.
type SentimentConfig struct {
	PositiveWords []string `koanf:"positive_words" validate:"required,min=1,dive,required"`
	NegativeWords []string `koanf:"negative_words" validate:"required,min=1,dive,required"`
	Match         string   `koanf:"match"          validate:"required,oneof=substring word"`
}

// SummaryConfig tunes the extractive summarizer.
type SummaryConfig struct {
	DefaultSentences int     `koanf:"default_sentences" validate:"required,min=1,ltefield=MaxSentences"`
	MaxSentences     int     `koanf:"max_sentences"     validate:"required,min=1,max=100"`
	Damping          float64 `koanf:"damping"           validate:"gt=0,lt=1"`
	Tolerance        float64 `koanf:"tolerance"         validate:"gt=0"`
	MaxIterations    int     `koanf:"max_iterations"    validate:"required,min=1,max=10000"`
	Language         string  `koanf:"language"          validate:"required"`
	Concurrency      int     `koanf:"concurrency"       validate:"required,min=1,max=64"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "feedbackd",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":                 DefaultServerPort,
		"server.host":                 "0.0.0.0",
		"server.read_timeout":         "30s",
		"server.write_timeout":        "30s",
		"server.idle_timeout":         "120s",
		"server.shutdown_timeout":     "10s",
		"server.request_timeout":      "15s",
		"server.max_request_size":     DefaultMaxRequestSize,
		"server.cors.allowed_origins": []string{"http://localhost:3000"},
		"server.cors.max_age":         "12h",

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/feedbackd.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "feedbackd",
		"telemetry.sampling_rate": 1.0,

		"session.cookie_name": "feedback_session",
		"session.secret":      "",
		"session.ttl":         DefaultSessionTTL.String(),
		"session.secure":      false,
		"session.issuer":      "feedbackd",

		"admin.username": "admin",
		"admin.password": "",

		"storage.driver":      "sqlite",
		"storage.dsn":         "./data/feedback.db",
		"storage.log_queries": false,

		"uploads.dir":                "./uploads",
		"uploads.allowed_extensions": []string{".png", ".jpg", ".jpeg", ".gif", ".webp"},

		"analysis.sentiment.positive_words": []string{"good", "great", "excellent", "happy", "amazing", "love"},
		"analysis.sentiment.negative_words": []string{"bad", "poor", "terrible", "sad", "hate", "issue", "problem"},
		"analysis.sentiment.match":          "substring",

		"analysis.summary.default_sentences": DefaultSummarySentences,
		"analysis.summary.max_sentences":     DefaultSummaryMaxSentences,
		"analysis.summary.damping":           0.85,
		"analysis.summary.tolerance":         1e-4,
		"analysis.summary.max_iterations":    200,
		"analysis.summary.language":          "english",
		"analysis.summary.concurrency":       DefaultSummaryConcurrency,
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	return LoadFrom("configs", profile)
}

// LoadFrom is Load with an explicit config directory.
func LoadFrom(dir, profile string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	err = loadFileIfExists(k, dir+"/base.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		err := loadFileIfExists(k, fmt.Sprintf("%s/%s.yaml", dir, profile))
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	err = k.Load(env.ProviderWithValue(envPrefix, ".", envMapper(k.Keys())), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envMapper maps APP_SERVER_MAX_REQUEST_SIZE onto server.max_request_size.
// Known keys are matched first so underscores inside key names survive;
// unknown variables fall back to treating every underscore as a separator.
// Values for list keys are split on commas.
func envMapper(known []string) func(key, value string) (string, any) {
	byEnv := make(map[string]string, len(known))
	for _, k := range known {
		byEnv[strings.ReplaceAll(k, ".", "_")] = k
	}

	lists := make(map[string]bool)
	for k, v := range defaults() {
		if _, ok := v.([]string); ok {
			lists[k] = true
		}
	}

	return func(key, value string) (string, any) {
		name := strings.ToLower(strings.TrimPrefix(key, envPrefix))

		path, ok := byEnv[name]
		if !ok {
			path = strings.ReplaceAll(name, "_", ".")
		}

		if lists[path] {
			return path, splitList(value)
		}

		return path, value
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
