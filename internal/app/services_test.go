//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conceptair/sizing-service/config"
	"github.com/conceptair/sizing-service/internal/catalog"
	"github.com/conceptair/sizing-service/internal/domain/model"
	"github.com/conceptair/sizing-service/internal/sizing"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		validate func(*testing.T, *ServiceComponents)
	}{
		{
			name: "creates service with default config",
			cfg:  config.Config{},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components.Sizing)
				assert.Equal(t, sizing.DefaultConfig(), components.SolverConfig)
				assert.Len(t, components.StaticCatalog, len(catalog.Builtin()))
			},
		},
		{
			name: "creates service with cache enabled",
			cfg: config.Config{
				Cache: config.CacheConfig{Size: 1000, TTL: 5 * time.Minute},
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components.Sizing)
			},
		},
		{
			name: "applies custom solver tuning",
			cfg: config.Config{
				Solver: config.SolverConfig{
					SeedW0:        70000,
					Damping:       0.5,
					Tolerance:     1e-8,
					MaxIterations: 500,
					ReserveFactor: 1.1,
				},
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.Equal(t, 70000.0, components.SolverConfig.SeedW0)
				assert.Equal(t, 0.5, components.SolverConfig.Damping)
				assert.Equal(t, 500, components.SolverConfig.MaxIterations)
			},
		},
		{
			name: "invalid tuning falls back to defaults",
			cfg: config.Config{
				Solver: config.SolverConfig{Damping: 2.0},
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components.Sizing)
				assert.Equal(t, sizing.DefaultConfig().Damping, components.SolverConfig.Damping)
			},
		},
		{
			name: "missing catalog file falls back to built-ins",
			cfg: config.Config{
				Catalog: config.CatalogConfig{FilePath: "/nonexistent/catalog.yaml"},
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.Len(t, components.StaticCatalog, len(catalog.Builtin()))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeServices(tt.cfg)
			require.NotNil(t, components)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}

func TestServiceComponents_Sizing(t *testing.T) {
	components := InitializeServices(config.Config{
		Cache: config.CacheConfig{Size: 100, TTL: time.Minute},
	})

	require.NotNil(t, components.Sizing)

	variant := catalog.Builtin()[0]
	result, err := components.Sizing.SizeDesign(context.Background(), variant)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConverged, result.Status)
	assert.Positive(t, result.W0)
}
