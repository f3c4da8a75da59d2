//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conceptair/sizing-service/config"
)

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		validate func(*testing.T, *RouterComponents)
	}{
		{
			name: "creates router components with defaults",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  100,
					RateWindow: time.Minute,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Handler)
				assert.NotNil(t, components.VariantsHandler)
				assert.NotNil(t, components.HealthHandler)
				assert.Equal(t, 100, components.Config.RateLimit)
				assert.Empty(t, components.Config.JWTSecret)
			},
		},
		{
			name: "auth enabled wires API keys and JWT secret",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  50,
					RateWindow: 30 * time.Second,
				},
				Auth: config.AuthConfig{
					Enabled:      true,
					APIKeys:      map[string]bool{"test-key": true},
					JWTSecretKey: "test-secret",
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.Equal(t, map[string]bool{"test-key": true}, components.Config.APIKeys)
				assert.Equal(t, "test-secret", components.Config.JWTSecret)
			},
		},
		{
			name: "auth disabled leaves JWT secret empty even when configured",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  100,
					RateWindow: time.Minute,
				},
				Auth: config.AuthConfig{
					Enabled:      false,
					JWTSecretKey: "unused-secret",
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.Empty(t, components.Config.JWTSecret)
			},
		},
		{
			name: "CORS and swagger settings pass through",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:   100,
					RateWindow:  time.Minute,
					CORSOrigins: []string{"https://sizing.example.com"},
					SwaggerUser: "docs",
					SwaggerPass: "docs-pass",
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.Equal(t, []string{"https://sizing.example.com"}, components.Config.CORSOrigins)
				assert.Equal(t, "docs", components.Config.SwaggerUser)
				assert.Equal(t, "docs-pass", components.Config.SwaggerPass)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := InitializeServices(tt.cfg)
			require.NotNil(t, services)

			components := InitializeRouter(services, nil, tt.cfg)
			require.NotNil(t, components)
			tt.validate(t, components)
		})
	}
}
