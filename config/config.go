package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config armazena todas as configurações do MottuFind.
type Config struct {
	// Geral
	Port        string `mapstructure:"PORT" validate:"required,numeric"`
	Environment string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`

	// Banco de Dados (PostgreSQL)
	DatabaseURL string        `mapstructure:"DEFAULT_CONNECTION" validate:"required"`
	DBTimeout   time.Duration `mapstructure:"-"`
	AutoMigrate bool          `mapstructure:"AUTO_MIGRATE"`

	// Cache (Redis)
	RedisAddr string        `mapstructure:"REDIS_ADDR" validate:"required"`
	CacheTTL  time.Duration `mapstructure:"-"`

	// Segurança (JWT)
	JWTKey      string        `mapstructure:"JWT_KEY" validate:"required,min=32"`
	JWTIssuer   string        `mapstructure:"JWT_ISSUER" validate:"required"`
	JWTAudience string        `mapstructure:"JWT_AUDIENCE" validate:"required"`
	TokenExpiry time.Duration `mapstructure:"-"`

	// Pátios e filiais ficam públicos por padrão.
	AuthPatioFilial bool `mapstructure:"AUTH_PATIO_FILIAL"`

	// Rate Limiting (0 desativa)
	RateLimitMaxRequests int           `mapstructure:"RATE_LIMIT_MAX_REQUESTS" validate:"gte=0"`
	RateLimitPeriod      time.Duration `mapstructure:"-"`

	// Health checks
	MemoryThresholdMB uint64 `mapstructure:"HEALTH_MEMORY_THRESHOLD_MB" validate:"gt=0"`

	// Ingestão de leituras RFID via MQTT (vazio desativa)
	MQTTBrokerURL string `mapstructure:"MQTT_BROKER_URL" validate:"omitempty,url"`
	MQTTClientID  string `mapstructure:"MQTT_CLIENT_ID"`
	MQTTTopic     string `mapstructure:"MQTT_TOPIC"`
}

var defaults = map[string]interface{}{
	"PORT":                       "8080",
	"ENV":                        "development",
	"LOG_LEVEL":                  "info",
	"DB_TIMEOUT_SEC":             5,
	"AUTO_MIGRATE":               false,
	"REDIS_ADDR":                 "localhost:6379",
	"CACHE_TTL_SEC":              300,
	"JWT_EXPIRY_MIN":             120,
	"AUTH_PATIO_FILIAL":          false,
	"RATE_LIMIT_MAX_REQUESTS":    100,
	"RATE_LIMIT_PERIOD_MIN":      1,
	"HEALTH_MEMORY_THRESHOLD_MB": 500,
	"MQTT_CLIENT_ID":             "mottufind-api",
	"MQTT_TOPIC":                 "mottufind/rfid/+/leituras",
}

// keys lista as variáveis lidas do ambiente. AutomaticEnv só resolve chaves conhecidas
// pelo viper, então as obrigatórias sem padrão precisam de BindEnv explícito.
var keys = []string{
	"PORT", "ENV", "LOG_LEVEL",
	"DEFAULT_CONNECTION", "DB_TIMEOUT_SEC", "AUTO_MIGRATE",
	"REDIS_ADDR", "CACHE_TTL_SEC",
	"JWT_KEY", "JWT_ISSUER", "JWT_AUDIENCE", "JWT_EXPIRY_MIN",
	"AUTH_PATIO_FILIAL",
	"RATE_LIMIT_MAX_REQUESTS", "RATE_LIMIT_PERIOD_MIN",
	"HEALTH_MEMORY_THRESHOLD_MB",
	"MQTT_BROKER_URL", "MQTT_CLIENT_ID", "MQTT_TOPIC",
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente e as valida.
// A ausência de DEFAULT_CONNECTION ou das chaves JWT é um erro de inicialização.
func LoadConfig() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("falha ao registrar variável %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("falha ao ler configuração: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.DBTimeout = time.Duration(v.GetInt("DB_TIMEOUT_SEC")) * time.Second
	cfg.CacheTTL = time.Duration(v.GetInt("CACHE_TTL_SEC")) * time.Second
	cfg.TokenExpiry = time.Duration(v.GetInt("JWT_EXPIRY_MIN")) * time.Minute
	cfg.RateLimitPeriod = time.Duration(v.GetInt("RATE_LIMIT_PERIOD_MIN")) * time.Minute

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuração inválida: %w", err)
	}
	return cfg, nil
}
