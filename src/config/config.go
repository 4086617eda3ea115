package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Databases DatabasesConfig `mapstructure:"databases"`
	Auth      AuthConfig      `mapstructure:"auth"`
}

type ServiceConfig struct {
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"logLevel"`
}

type DatabasesConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

type AuthConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expirationHours"`
}

// LoadConfig reads settings/appsettings.yaml or, when env is set, the
// environment-specific appsettings.<ENV>.yaml variant.
func LoadConfig(path, env string) (*Config, error) {
	var cfg Config

	configName := "appsettings"
	if env != "" {
		configName = "appsettings." + env
	}

	viper.AddConfigPath(path)
	viper.SetConfigName(configName)
	viper.SetConfigType("yaml")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	// Secrets come from the environment when the file leaves them empty.
	if cfg.Auth.Secret == "" {
		cfg.Auth.Secret = os.Getenv("JWT_SECRET")
	}
	if cfg.Databases.SQL.Password == "" {
		cfg.Databases.SQL.Password = os.Getenv("DB_PASSWORD")
	}
	if cfg.Auth.ExpirationHours == 0 {
		cfg.Auth.ExpirationHours = 24 * 7
	}
	return &cfg, nil
}
