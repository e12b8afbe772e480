package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultBaseURL   = "http://localhost:8080"
	defaultLogLevel  = "info"
	defaultEnv       = "local"
	defaultConfigDir = ".healthsync"
	defaultQRSize    = 256
)

type Config struct {
	Env       string `mapstructure:"app_env"`
	BaseURL   string `mapstructure:"base_url"`
	LogLevel  string `mapstructure:"log_level"`
	ConfigDir string `mapstructure:"config_dir"`
	DataPath  string `mapstructure:"data_path"`
	QRSize    int    `mapstructure:"qr_size"`
}

// MustLoad loads the client configuration from environment variables and an
// optional .env file.
func MustLoad() *Config {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("failed to load .env file: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("BASE_URL", defaultBaseURL)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("QR_SIZE", defaultQRSize)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("failed to create config directory: %v\n", err)
	}

	dataPath := viper.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, "healthsync.db")
	}

	return &Config{
		Env:       viper.GetString("APP_ENV"),
		BaseURL:   viper.GetString("BASE_URL"),
		LogLevel:  viper.GetString("LOG_LEVEL"),
		ConfigDir: configDir,
		DataPath:  dataPath,
		QRSize:    viper.GetInt("QR_SIZE"),
	}
}
