package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "devconnect", cfg.DBName)
	assert.Equal(t, 168, cfg.JWTTTLHours)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid development config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.Port = "" },
			wantErr: true,
		},
		{
			name:    "missing jwt secret",
			mutate:  func(c *Config) { c.JWTSecret = "" },
			wantErr: true,
		},
		{
			name:    "non-positive token ttl",
			mutate:  func(c *Config) { c.JWTTTLHours = 0 },
			wantErr: true,
		},
		{
			name: "default secret rejected in production",
			mutate: func(c *Config) {
				c.Env = "production"
				c.JWTSecret = "dev-secret-change-in-production"
			},
			wantErr: true,
		},
		{
			name: "short secret rejected in production",
			mutate: func(c *Config) {
				c.Env = "production"
				c.JWTSecret = "short"
				c.DBPassword = "something-strong-enough"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Port:        "5000",
				Env:         "development",
				JWTSecret:   "dev-secret-change-in-production",
				JWTTTLHours: 168,
				DBPassword:  "password",
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
