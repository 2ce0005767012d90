package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Play     PlayConfig
	Argon2   Argon2Config
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	MaxConns    int32
	AutoMigrate bool
}

// PlayConfig holds the defaults applied to plays created without fee, price or capacity
type PlayConfig struct {
	FeePercent   float64
	Price        float64
	TotalAccents int
}

type Argon2Config struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
}

// LoadConfig reads the given .env file (if present) and lets the environment override it
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "theater-booking")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("PLAY_FEE_PERCENT", 0.1)
	v.SetDefault("PLAY_PRICE", 50.0)
	v.SetDefault("PLAY_TOTAL_ACCENTS", 100)
	v.SetDefault("ARGON2_TIME", 2)
	v.SetDefault("ARGON2_MEMORY_KB", 102400)
	v.SetDefault("ARGON2_THREADS", 8)
	v.SetDefault("ARGON2_KEY_LEN", 32)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			Name:        v.GetString("DB_NAME"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Play: PlayConfig{
			FeePercent:   v.GetFloat64("PLAY_FEE_PERCENT"),
			Price:        v.GetFloat64("PLAY_PRICE"),
			TotalAccents: v.GetInt("PLAY_TOTAL_ACCENTS"),
		},
		Argon2: Argon2Config{
			Time:    v.GetUint32("ARGON2_TIME"),
			Memory:  v.GetUint32("ARGON2_MEMORY_KB"),
			Threads: uint8(v.GetUint("ARGON2_THREADS")),
			KeyLen:  v.GetUint32("ARGON2_KEY_LEN"),
		},
	}

	return config, nil
}
