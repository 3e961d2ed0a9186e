package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration for testing.
func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "feedbackd",
			Version:     "1.0.0",
			Environment: "local",
		},
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RequestTimeout:  15 * time.Second,
			MaxRequestSize:  DefaultMaxRequestSize,
			CORS:            CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Session: SessionConfig{
			CookieName: "feedback_session",
			Secret:     "0123456789abcdef0123456789abcdef",
			TTL:        time.Hour,
			Issuer:     "feedbackd",
		},
		Admin: AdminConfig{
			Username: "admin",
			Password: "correct-horse",
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			DSN:    "./data/feedback.db",
		},
		Uploads: UploadsConfig{
			Dir:               "./uploads",
			AllowedExtensions: []string{".png"},
		},
		Analysis: AnalysisConfig{
			Sentiment: SentimentConfig{
				PositiveWords: []string{"good"},
				NegativeWords: []string{"bad"},
				Match:         "substring",
			},
			Summary: SummaryConfig{
				DefaultSentences: 1,
				MaxSentences:     10,
				Damping:          0.85,
				Tolerance:        1e-4,
				MaxIterations:    200,
				Language:         "english",
				Concurrency:      4,
			},
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestConfig_Validate_AppConfig(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Name = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.name")
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("invalid environment", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Environment = "invalid"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.environment")
		assert.Contains(t, err.Error(), "must be one of")
	})
}

func TestConfig_Validate_ValidEnvironments(t *testing.T) {
	for _, env := range []string{"local", "dev", "qa", "prod", "test"} {
		t.Run(env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = env

			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestConfig_Validate_ServerConfig(t *testing.T) {
	t.Run("valid port range", func(t *testing.T) {
		tests := []struct {
			name    string
			port    int
			wantErr bool
		}{
			{"minimum valid port", 1, false},
			{"typical port", 8080, false},
			{"maximum valid port", 65535, false},
			{"zero port", 0, true},
			{"negative port", -1, true},
			{"port too high", 65536, true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cfg := validConfig()
				cfg.Server.Port = tt.port

				err := cfg.Validate()
				if tt.wantErr {
					require.Error(t, err)
					assert.Contains(t, err.Error(), "server.port")
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("timeout minimum", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.ReadTimeout = 500 * time.Millisecond

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.read_timeout")
	})

	t.Run("request timeout required", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.RequestTimeout = 0

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.request_timeout is required")
	})

	t.Run("max request size minimum", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.MaxRequestSize = 0

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.max_request_size")
	})

	t.Run("blank cors origin", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.CORS.AllowedOrigins = []string{"http://ok.example", ""}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.cors.allowed_origins[1]")
	})
}

func TestConfig_Validate_LogConfig(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				cfg := validConfig()
				cfg.Log.Level = level

				assert.NoError(t, cfg.Validate())
			})
		}
	})

	t.Run("case sensitive log level", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.Level = "DEBUG"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.level")
	})

	t.Run("invalid log format", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.Format = "xml"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.format")
	})

	t.Run("file logging enabled - path required", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File.Enabled = true
		cfg.Log.File.Path = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.file.path")
	})
}

func TestConfig_Validate_TelemetryConfig(t *testing.T) {
	t.Run("telemetry enabled - endpoint required", func(t *testing.T) {
		cfg := validConfig()
		cfg.Telemetry.Enabled = true
		cfg.Telemetry.ServiceName = "feedbackd"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telemetry.endpoint")
	})

	t.Run("sampling rate bounds", func(t *testing.T) {
		tests := []struct {
			rate    float64
			wantErr bool
		}{
			{0, false},
			{0.5, false},
			{1, false},
			{1.5, true},
			{-0.1, true},
		}

		for _, tt := range tests {
			t.Run(fmt.Sprintf("rate_%v", tt.rate), func(t *testing.T) {
				cfg := validConfig()
				cfg.Telemetry.SamplingRate = tt.rate

				err := cfg.Validate()
				if tt.wantErr {
					require.Error(t, err)
					assert.Contains(t, err.Error(), "telemetry.sampling_rate")
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestConfig_Validate_SessionAndAdmin(t *testing.T) {
	t.Run("short secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Session.Secret = "too-short"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "session.secret must be at least 32")
	})

	t.Run("missing secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Session.Secret = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "session.secret is required")
	})

	t.Run("missing admin password", func(t *testing.T) {
		cfg := validConfig()
		cfg.Admin.Password = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "admin.password")
	})

	t.Run("secret value never appears in the error", func(t *testing.T) {
		cfg := validConfig()
		cfg.Session.Secret = "hunter2"

		err := cfg.Validate()
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "hunter2")
	})
}

func TestConfig_Validate_StorageConfig(t *testing.T) {
	t.Run("memory needs no dsn", func(t *testing.T) {
		cfg := validConfig()
		cfg.Storage.Driver = "memory"
		cfg.Storage.DSN = ""

		assert.NoError(t, cfg.Validate())
	})

	t.Run("sqlite needs dsn", func(t *testing.T) {
		cfg := validConfig()
		cfg.Storage.DSN = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage.dsn is required unless")
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := validConfig()
		cfg.Storage.Driver = "mysql"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage.driver must be one of")
	})
}

func TestConfig_Validate_AnalysisConfig(t *testing.T) {
	t.Run("unknown match mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.Analysis.Sentiment.Match = "regex"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "analysis.sentiment.match")
	})

	t.Run("empty lexicon", func(t *testing.T) {
		cfg := validConfig()
		cfg.Analysis.Sentiment.NegativeWords = nil

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "analysis.sentiment.negative_words")
	})

	t.Run("damping bounds", func(t *testing.T) {
		for _, d := range []float64{0, 1, 1.2} {
			t.Run(fmt.Sprintf("damping_%v", d), func(t *testing.T) {
				cfg := validConfig()
				cfg.Analysis.Summary.Damping = d

				err := cfg.Validate()
				require.Error(t, err)
				assert.Contains(t, err.Error(), "analysis.summary.damping")
			})
		}
	})

	t.Run("default above max", func(t *testing.T) {
		cfg := validConfig()
		cfg.Analysis.Summary.DefaultSentences = 11

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "analysis.summary.default_sentences must not exceed maxsentences")
	})
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := &Config{
		App: AppConfig{
			Name:        "",
			Version:     "",
			Environment: "invalid",
		},
		Server: ServerConfig{
			Port: -1,
		},
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "app.name")
	assert.Contains(t, errStr, "app.version")
	assert.Contains(t, errStr, "server.port")
}

func TestFormatFieldPath(t *testing.T) {
	tests := []struct {
		namespace string
		expected  string
	}{
		{"Config.server.port", "server.port"},
		{"Config.app.name", "app.name"},
		{"Config.analysis.summary.max_iterations", "analysis.summary.max_iterations"},
		{"Config.log.file.path", "log.file.path"},
		{"port", "port"},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFieldPath(tt.namespace))
		})
	}
}
