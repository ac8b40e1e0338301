package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Email    EmailConfig
	Booking  BookingConfig
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

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// BookingConfig holds the reservation policy knobs. The advance-payment share
// and the cancellation/update windows are hotel policy, not hard rules, so they
// are configurable per deployment.
type BookingConfig struct {
	AdvancePaymentPercent    float64
	CancelWindowHours        int
	AdvanceCancelWindowHours int
	UpdateWindowHours        int
	AdminEmail               string
	HotelEmail               string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("ADVANCE_PAYMENT_PERCENT", 30)
	viper.SetDefault("CANCEL_WINDOW_HOURS", 20)
	viper.SetDefault("ADVANCE_CANCEL_WINDOW_HOURS", 30)
	viper.SetDefault("UPDATE_WINDOW_HOURS", 30)

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
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		Booking: BookingConfig{
			AdvancePaymentPercent:    viper.GetFloat64("ADVANCE_PAYMENT_PERCENT"),
			CancelWindowHours:        viper.GetInt("CANCEL_WINDOW_HOURS"),
			AdvanceCancelWindowHours: viper.GetInt("ADVANCE_CANCEL_WINDOW_HOURS"),
			UpdateWindowHours:        viper.GetInt("UPDATE_WINDOW_HOURS"),
			AdminEmail:               viper.GetString("ADMIN_EMAIL"),
			HotelEmail:               viper.GetString("HOTEL_EMAIL"),
		},
	}

	return config, nil
}
