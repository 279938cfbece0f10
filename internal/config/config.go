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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Cache           Cache           `mapstructure:",squash"`
	Query           Query           `mapstructure:",squash"`
	MetadataRefresh MetadataRefresh `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Cache controla os TTLs do cache de consultas em memória
type Cache struct {
	QueryTTLSeconds    int `mapstructure:"query_cache_ttl_seconds"`
	MetadataTTLSeconds int `mapstructure:"metadata_cache_ttl_seconds"`
}

// Query controla o timeout e a política de retry das consultas ao banco
type Query struct {
	TimeoutSeconds int `mapstructure:"query_timeout_seconds"`
	RetryAttempts  int `mapstructure:"query_retry_attempts"`
	RetryDelayMS   int `mapstructure:"query_retry_delay_ms"`
}

type MetadataRefresh struct {
	CronSchedule string `mapstructure:"metadata_refresh_cron"`
	Enabled      bool   `mapstructure:"metadata_refresh_enabled"`
}

func (c Cache) QueryTTL() time.Duration {
	return time.Duration(c.QueryTTLSeconds) * time.Second
}

func (c Cache) MetadataTTL() time.Duration {
	return time.Duration(c.MetadataTTLSeconds) * time.Second
}

func (q Query) Timeout() time.Duration {
	return time.Duration(q.TimeoutSeconds) * time.Second
}

func (q Query) RetryDelay() time.Duration {
	return time.Duration(q.RetryDelayMS) * time.Millisecond
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/retail_sales")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Defaults do cache de consultas
	viper.SetDefault("QUERY_CACHE_TTL_SECONDS", 600)     // 10 minutos para consultas filtradas
	viper.SetDefault("METADATA_CACHE_TTL_SECONDS", 3600) // 1 hora para limites de datas e valores distintos

	// Defaults de execução de consultas
	viper.SetDefault("QUERY_TIMEOUT_SECONDS", 10)
	viper.SetDefault("QUERY_RETRY_ATTEMPTS", 1) // 1 retry para falhas transitórias de conexão
	viper.SetDefault("QUERY_RETRY_DELAY_MS", 250)

	// Defaults para o re-aquecimento do cache de metadados
	viper.SetDefault("METADATA_REFRESH_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("METADATA_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
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
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
