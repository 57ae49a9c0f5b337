package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	MCP              MCP              `mapstructure:",squash"`
	Pricing          Pricing          `mapstructure:",squash"`
	DashboardRefresh DashboardRefresh `mapstructure:",squash"`
	HealthCheck      HealthCheck      `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	// Origens liberadas no CORS da API JSON, separadas por vírgula na variável de ambiente
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// MCP agrupa o endereço e os timeouts da API externa do MCP Framework
type MCP struct {
	URL               string        `mapstructure:"mcp_api_url"`
	MetricsTimeout    time.Duration `mapstructure:"mcp_metrics_timeout"`
	HealthTimeout     time.Duration `mapstructure:"mcp_health_timeout"`
	GenerationTimeout time.Duration `mapstructure:"mcp_generation_timeout"`
}

// Pricing centraliza os valores comerciais usados pelos painéis
type Pricing struct {
	KitUnitPrice      int64 `mapstructure:"pricing_kit_unit_price"`
	EDCSubscription   int64 `mapstructure:"pricing_edc_subscription"`
	ReloKits          int64 `mapstructure:"pricing_relo_kits"`
	MonthlyGoal       int64 `mapstructure:"pricing_monthly_goal"`
	SocialPostsPerKit int   `mapstructure:"pricing_social_posts_per_kit"`
}

type DashboardRefresh struct {
	CronSchedule string        `mapstructure:"dashboard_refresh_cron"`
	Enabled      bool          `mapstructure:"dashboard_refresh_enabled"`
	Timeout      time.Duration `mapstructure:"dashboard_refresh_timeout"`
}

type HealthCheck struct {
	CronSchedule string        `mapstructure:"health_check_cron"`
	Enabled      bool          `mapstructure:"health_check_enabled"`
	Timeout      time.Duration `mapstructure:"health_check_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("MCP_API_URL", "https://mcp-framework.onrender.com")
	viper.SetDefault("MCP_METRICS_TIMEOUT", "15s")
	viper.SetDefault("MCP_HEALTH_TIMEOUT", "10s")
	viper.SetDefault("MCP_GENERATION_TIMEOUT", "90s")

	viper.SetDefault("PRICING_KIT_UNIT_PRICE", 750)
	viper.SetDefault("PRICING_EDC_SUBSCRIPTION", 2000)
	viper.SetDefault("PRICING_RELO_KITS", 15000)
	viper.SetDefault("PRICING_MONTHLY_GOAL", 100000)
	viper.SetDefault("PRICING_SOCIAL_POSTS_PER_KIT", 4)

	// Atualização periódica do painel
	viper.SetDefault("DASHBOARD_REFRESH_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", false)
	viper.SetDefault("DASHBOARD_REFRESH_TIMEOUT", "30s")

	viper.SetDefault("HEALTH_CHECK_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("HEALTH_CHECK_ENABLED", false)
	viper.SetDefault("HEALTH_CHECK_TIMEOUT", "15s")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.MCP.URL = strings.TrimRight(config.MCP.URL, "/")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica se os valores carregados permitem subir o painel
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.MCP.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: MCP_API_URL inválida: %q", c.MCP.URL)
	}

	if c.Pricing.MonthlyGoal <= 0 {
		return fmt.Errorf("config: PRICING_MONTHLY_GOAL deve ser positivo, recebido %d", c.Pricing.MonthlyGoal)
	}

	if c.Pricing.KitUnitPrice <= 0 {
		return fmt.Errorf("config: PRICING_KIT_UNIT_PRICE deve ser positivo, recebido %d", c.Pricing.KitUnitPrice)
	}

	if c.MCP.GenerationTimeout <= 0 {
		return fmt.Errorf("config: MCP_GENERATION_TIMEOUT deve ser positivo, recebido %s", c.MCP.GenerationTimeout)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
