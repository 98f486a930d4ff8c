package config

import (
	"fmt"
	"os"
	"time"

	"github.com/DanRulev/easyflash.git/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	API      APIConfig      `mapstructure:"api" validate:"required"`
	BotToken string         `mapstructure:"bot_token"`
	DB       DBConfig       `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Env      string         `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout            time.Duration `mapstructure:"timeout" validate:"min=1"`
	LearnedThreshold   int           `mapstructure:"learned_threshold" validate:"min=1"`
	DifficultThreshold int           `mapstructure:"difficult_threshold" validate:"min=1"`
	Reconcile          bool          `mapstructure:"reconcile"`
	OptionalCategory   bool          `mapstructure:"optional_category"`
}

type APIConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// DBConfig is optional: with an empty host no session history is kept.
type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port" validate:"required_with=Host"`
	User     string `mapstructure:"user" validate:"required_with=Host"`
	Password string `mapstructure:"password" validate:"required_with=Host"`
	Name     string `mapstructure:"name" validate:"required_with=Host"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=0,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

// RedisConfig is optional: with an empty URL user state lives in memory.
type RedisConfig struct {
	URL string        `mapstructure:"url"`
	TTL time.Duration `mapstructure:"ttl" validate:"min=0"`
}

type ReminderConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	At      string `mapstructure:"at" validate:"omitempty,datetime=15:04"`
}

func (d DBConfig) Enabled() bool {
	return d.Conn.Host != ""
}

func (r RedisConfig) Enabled() bool {
	return r.URL != ""
}

func Init() (*Config, error) {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	return load("configs")
}

func load(dir string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath(dir)
	v.SetConfigName(configName)

	bindings := []struct {
		key string
		env string
	}{
		{"bot_token", "BOT_TOKEN"},
		{"api.url", "API_URL"},
		{"redis.url", "REDIS_URL"},
		{"db.conn.host", "DB_HOST"},
		{"db.conn.port", "DB_PORT"},
		{"db.conn.user", "DB_USER"},
		{"db.conn.password", "DB_PASSWORD"},
		{"db.conn.name", "DB_NAME"},
		{"db.conn.ssl", "DB_SSL"},
	}
	for _, b := range bindings {
		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", b.env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
