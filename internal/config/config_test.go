package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0", cfg.ServerHost)
				assert.Equal(t, 8080, cfg.ServerPort)
				assert.Equal(t, "postgres", cfg.DBDriver)
				assert.Equal(t, 25, cfg.DBMaxOpenConnections)
				assert.Equal(t, 5, cfg.DBMaxIdleConnections)
				assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, 7200*time.Second, cfg.JWTExpiration)
				assert.True(t, cfg.RateLimitLoginEnabled)
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "fleetflow", cfg.MetricsNamespace)
			},
		},
		{
			name: "load custom token configuration",
			envVars: map[string]string{
				"JWT_SIGNING_KEY":        "super-secret-key",
				"JWT_ISSUER":             "fleetflow-api",
				"JWT_AUDIENCE":           "fleetflow-clients",
				"JWT_EXPIRATION_SECONDS": "3600",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "super-secret-key", cfg.JWTSigningKey)
				assert.Equal(t, "fleetflow-api", cfg.JWTIssuer)
				assert.Equal(t, "fleetflow-clients", cfg.JWTAudience)
				assert.Equal(t, time.Hour, cfg.JWTExpiration)
			},
		},
		{
			name: "load custom server configuration",
			envVars: map[string]string{
				"SERVER_HOST": "localhost",
				"SERVER_PORT": "9090",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "localhost", cfg.ServerHost)
				assert.Equal(t, 9090, cfg.ServerPort)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg := Load()
			tt.validate(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			JWTSigningKey: "key",
			JWTIssuer:     "issuer",
			JWTAudience:   "audience",
			JWTExpiration: 2 * time.Hour,
		}
	}

	t.Run("ValidConfig", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("MissingSigningKey", func(t *testing.T) {
		cfg := valid()
		cfg.JWTSigningKey = ""
		assert.ErrorContains(t, cfg.Validate(), "JWT_SIGNING_KEY")
	})

	t.Run("MissingIssuer", func(t *testing.T) {
		cfg := valid()
		cfg.JWTIssuer = ""
		assert.ErrorContains(t, cfg.Validate(), "JWT_ISSUER")
	})

	t.Run("MissingAudience", func(t *testing.T) {
		cfg := valid()
		cfg.JWTAudience = ""
		assert.ErrorContains(t, cfg.Validate(), "JWT_AUDIENCE")
	})

	t.Run("NonPositiveExpiration", func(t *testing.T) {
		cfg := valid()
		cfg.JWTExpiration = 0
		assert.ErrorContains(t, cfg.Validate(), "JWT_EXPIRATION_SECONDS")
	})
}

func TestGetGinMode(t *testing.T) {
	tests := []struct {
		logLevel string
		expected string
	}{
		{"debug", "debug"},
		{"info", "release"},
		{"warn", "release"},
		{"error", "release"},
		{"unknown", "release"},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			assert.Equal(t, tt.expected, cfg.GetGinMode())
		})
	}
}
