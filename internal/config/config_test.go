package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		MCP: MCP{
			URL:               "https://mcp-framework.onrender.com",
			GenerationTimeout: 90 * time.Second,
		},
		Pricing: Pricing{
			KitUnitPrice: 750,
			MonthlyGoal:  100000,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "configuração válida",
			mutate: func(c *Config) {},
		},
		{
			name:    "url sem esquema",
			mutate:  func(c *Config) { c.MCP.URL = "mcp-framework.onrender.com" },
			wantErr: "MCP_API_URL",
		},
		{
			name:    "url vazia",
			mutate:  func(c *Config) { c.MCP.URL = "" },
			wantErr: "MCP_API_URL",
		},
		{
			name:    "meta mensal zero",
			mutate:  func(c *Config) { c.Pricing.MonthlyGoal = 0 },
			wantErr: "PRICING_MONTHLY_GOAL",
		},
		{
			name:    "preço do kit negativo",
			mutate:  func(c *Config) { c.Pricing.KitUnitPrice = -1 },
			wantErr: "PRICING_KIT_UNIT_PRICE",
		},
		{
			name:    "timeout de geração zero",
			mutate:  func(c *Config) { c.MCP.GenerationTimeout = 0 },
			wantErr: "MCP_GENERATION_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// NewConfig procura .env a partir do diretório atual
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	chdirTemp(t)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://mcp-framework.onrender.com", cfg.MCP.URL)
	assert.Equal(t, 15*time.Second, cfg.MCP.MetricsTimeout)
	assert.Equal(t, 10*time.Second, cfg.MCP.HealthTimeout)
	assert.Equal(t, 90*time.Second, cfg.MCP.GenerationTimeout)
	assert.Equal(t, int64(750), cfg.Pricing.KitUnitPrice)
	assert.Equal(t, int64(100000), cfg.Pricing.MonthlyGoal)
	assert.Equal(t, 4, cfg.Pricing.SocialPostsPerKit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.DashboardRefresh.Enabled)
	assert.Equal(t, "*/5 * * * *", cfg.HealthCheck.CronSchedule)
	assert.Equal(t, 30*time.Second, cfg.DashboardRefresh.Timeout)
	assert.Equal(t, 15*time.Second, cfg.HealthCheck.Timeout)
}

func TestNewConfig_Env(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	chdirTemp(t)

	t.Setenv("MCP_API_URL", "http://localhost:9000/")
	t.Setenv("MCP_GENERATION_TIMEOUT", "2m")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("PRICING_MONTHLY_GOAL", "50000")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.MCP.URL)
	assert.Equal(t, 2*time.Minute, cfg.MCP.GenerationTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, int64(50000), cfg.Pricing.MonthlyGoal)
}
