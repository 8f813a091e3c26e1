package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server       ServerConfig       `yaml:"server"       validate:"required"`
	Logger       LoggerConfig       `yaml:"logger"       validate:"required"`
	Gin          GinConfig          `yaml:"gin"          validate:"required"`
	Postgres     PostgresConfig     `yaml:"postgres"     validate:"required"`
	Lock         LockConfig         `yaml:"lock"         validate:"required"`
	Registration RegistrationConfig `yaml:"registration" validate:"required"`
	Gateway      GatewayConfig      `yaml:"gateway"      validate:"required"`
	Scheduler    SchedulerConfig    `yaml:"scheduler"    validate:"required"`
	Telegram     TelegramConfig     `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"       validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"            validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"        validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"        validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"eventregistrar"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"         validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"              validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"               validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"              validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// LockConfig управляет сервисом блокировок: где живут ключи и сколько
// ждать занятый ключ. Движок memory годится только для одного инстанса.
type LockConfig struct {
	Engine          string        `yaml:"engine"            env:"LOCK_ENGINE"            env-default:"postgres" validate:"required,oneof=postgres memory"`
	TTL             time.Duration `yaml:"ttl"               env:"LOCK_TTL"               env-default:"10s"      validate:"gt=0"`
	WaitTimeout     time.Duration `yaml:"wait_timeout"      env:"LOCK_WAIT_TIMEOUT"      env-default:"10s"      validate:"gt=0"`
	PollInterval    time.Duration `yaml:"poll_interval"     env:"LOCK_POLL_INTERVAL"     env-default:"25ms"     validate:"gt=0"`
	MaxPollInterval time.Duration `yaml:"max_poll_interval" env:"LOCK_MAX_POLL_INTERVAL" env-default:"250ms"    validate:"gt=0"`
}

type RegistrationConfig struct {
	RoleCeiling int `yaml:"role_ceiling" env:"REGISTRATION_ROLE_CEILING" env-default:"3" validate:"min=1"`
}

// GatewayConfig описывает платёжный шлюз. Пустой webhook_secret означает,
// что подписи вебхуков никогда не пройдут проверку.
type GatewayConfig struct {
	BaseURL       string        `yaml:"base_url"       env:"GATEWAY_BASE_URL"       env-default:"http://localhost:8081" validate:"required,url"`
	APIKey        string        `yaml:"api_key"        env:"GATEWAY_API_KEY"        env-default:""`
	WebhookSecret string        `yaml:"webhook_secret" env:"GATEWAY_WEBHOOK_SECRET" env-default:""`
	Timeout       time.Duration `yaml:"timeout"        env:"GATEWAY_TIMEOUT"        env-default:"10s" validate:"gt=0"`
	CheckoutTTL   time.Duration `yaml:"checkout_ttl"   env:"GATEWAY_CHECKOUT_TTL"   env-default:"30m" validate:"gt=0"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"30s" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
