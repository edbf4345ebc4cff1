package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Planner  PlannerConfig
	Paystack PaystackConfig
	Email    EmailConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	BaseURL      string
	DashboardURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string
}

type PlannerConfig struct {
	APIKey   string
	Endpoint string
	Enabled  bool
}

type PaystackConfig struct {
	SecretKey string
	BaseURL   string
}

type EmailConfig struct {
	ResendAPIKey string
	FromEmail    string
	OpsInbox     string
	SMTPEnabled  bool
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, relying on environment variables: %v", err)
	}

	// OS environment overrides the .env file.
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("PLANNER_ENABLED", true)
	viper.SetDefault("PAYSTACK_BASE_URL", "https://api.paystack.co")
	viper.BindEnv("SERVER_PORT", "PORT")
	viper.BindEnv("DATABASE_URL")

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Env:          viper.GetString("SERVER_ENV"),
			BaseURL:      viper.GetString("BASE_URL"),
			DashboardURL: viper.GetString("DASHBOARD_URL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			URL:      viper.GetString("DATABASE_URL"),
		},
		Planner: PlannerConfig{
			APIKey:   viper.GetString("PLANNER_API_KEY"),
			Endpoint: viper.GetString("PLANNER_ENDPOINT"),
			Enabled:  viper.GetBool("PLANNER_ENABLED"),
		},
		Paystack: PaystackConfig{
			SecretKey: viper.GetString("PAYSTACK_SECRET_KEY"),
			BaseURL:   viper.GetString("PAYSTACK_BASE_URL"),
		},
		Email: EmailConfig{
			ResendAPIKey: viper.GetString("RESEND_API_KEY"),
			FromEmail:    viper.GetString("EMAIL_FROM"),
			OpsInbox:     viper.GetString("OPS_INBOX"),
			SMTPEnabled:  viper.GetBool("SMTP_ENABLED"),
			SMTPHost:     viper.GetString("SMTP_HOST"),
			SMTPPort:     viper.GetString("SMTP_PORT"),
			SMTPUser:     viper.GetString("SMTP_USER"),
			SMTPPassword: viper.GetString("SMTP_PASSWORD"),
		},
	}

	log.Printf("Configuration loaded:")
	log.Printf("- Server Port: %s", AppConfig.Server.Port)
	log.Printf("- Server Env: %s", AppConfig.Server.Env)
	log.Printf("- Database: %s", maskedPresence(AppConfig.Database.URL, AppConfig.Database.Host))
	log.Printf("- Planner Enabled: %v", AppConfig.Planner.Enabled)
	log.Printf("- Paystack Key: %s", presence(AppConfig.Paystack.SecretKey))
	log.Printf("- Resend Key: %s", presence(AppConfig.Email.ResendAPIKey))
}

func presence(v string) string {
	if v != "" {
		return "SET"
	}
	return "NOT SET"
}

func maskedPresence(url, host string) string {
	if url != "" {
		return "DATABASE_URL"
	}
	if host != "" {
		return host
	}
	return "NOT SET"
}
