package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	OTP      OTPConfig
	Storage  StorageConfig
	HTTP     HTTPConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

type OTPConfig struct {
	ExpiryMinutes int
	Length        int
}

type StorageConfig struct {
	Dir            string
	BaseURL        string
	MaxUploadMB    int64
	MaxGallerySize int
}

type HTTPConfig struct {
	CORSOrigin   string
	RateLimitRPM int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "rate-am")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("STORAGE_DIR", "uploads/")
	viper.SetDefault("STORAGE_BASE_URL", "/uploads")
	viper.SetDefault("STORAGE_MAX_UPLOAD_MB", 10)
	viper.SetDefault("STORAGE_MAX_GALLERY", 4)
	viper.SetDefault("CORS_ORIGIN", "*")
	viper.SetDefault("RATE_LIMIT_RPM", 200)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		OTP: OTPConfig{
			ExpiryMinutes: viper.GetInt("OTP_EXPIRY_MINUTES"),
			Length:        viper.GetInt("OTP_LENGTH"),
		},
		Storage: StorageConfig{
			Dir:            viper.GetString("STORAGE_DIR"),
			BaseURL:        viper.GetString("STORAGE_BASE_URL"),
			MaxUploadMB:    viper.GetInt64("STORAGE_MAX_UPLOAD_MB"),
			MaxGallerySize: viper.GetInt("STORAGE_MAX_GALLERY"),
		},
		HTTP: HTTPConfig{
			CORSOrigin:   viper.GetString("CORS_ORIGIN"),
			RateLimitRPM: viper.GetInt("RATE_LIMIT_RPM"),
		},
	}

	return config, nil
}
