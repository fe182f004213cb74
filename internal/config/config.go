package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	Sheets             Sheets             `mapstructure:",squash"`
	SheetsSync         SheetsSync         `mapstructure:",squash"`
	SalespersonRanking SalespersonRanking `mapstructure:",squash"`
	Reporting          Reporting          `mapstructure:",squash"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"timezone"`
	Location *time.Location `mapstructure:"-"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

// Sheets contém as URLs de exportação CSV das planilhas de origem
type Sheets struct {
	SalesURL  string        `mapstructure:"sheets_sales_url"`
	BudgetURL string        `mapstructure:"sheets_budget_url"`
	CallsURL  string        `mapstructure:"sheets_calls_url"`
	Timeout   time.Duration `mapstructure:"sheets_timeout"`
}

type SheetsSync struct {
	CronSchedule string `mapstructure:"sheets_sync_cron"`
	Enabled      bool   `mapstructure:"sheets_sync_enabled"`
}

type SalespersonRanking struct {
	CronSchedule string `mapstructure:"salesperson_ranking_cron"`
	Enabled      bool   `mapstructure:"salesperson_ranking_enabled"`
}

type Reporting struct {
	DailyClientsTarget float64 `mapstructure:"reporting_daily_clients_target"`
	TopProductsLimit   int     `mapstructure:"reporting_top_products_limit"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("SHEETS_SALES_URL", "")
	viper.SetDefault("SHEETS_BUDGET_URL", "")
	viper.SetDefault("SHEETS_CALLS_URL", "")
	viper.SetDefault("SHEETS_TIMEOUT", "30s")

	viper.SetDefault("SHEETS_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("SHEETS_SYNC_ENABLED", false)

	viper.SetDefault("SALESPERSON_RANKING_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("SALESPERSON_RANKING_ENABLED", false)

	viper.SetDefault("REPORTING_DAILY_CLIENTS_TARGET", 25)
	viper.SetDefault("REPORTING_TOP_PRODUCTS_LIMIT", 60)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("TIMEZONE", "America/Santiago")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

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

	config.App.Location, err = time.LoadLocation(config.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("fuso horário inválido %q: %w", config.App.Timezone, err)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile procura o arquivo .env no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
