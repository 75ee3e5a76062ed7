package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Global
		Loans
		Assistant
		Admin
		OverdueReport
		CORS
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Loans struct {
		PeriodMonths int // loan length in calendar months
	}
	Assistant struct {
		APIKey  string
		Model   string
		BaseURL string // override for tests; empty means the public endpoint
	}
	// Admin is the hardcoded login placeholder. There is no session or role
	// model behind it.
	Admin struct {
		Username string
		Password string
	}
	OverdueReport struct {
		Enabled  bool
		Schedule string // Cron format: "0 8 * * *" = daily at 08:00
	}
	CORS struct {
		AllowedOrigins []string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8199)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("loan_period_months", 1)

	// Assistant defaults
	v.SetDefault("assistant_api_key", "")
	v.SetDefault("assistant_model", "gemini-2.5-flash")
	v.SetDefault("assistant_base_url", "")

	// Placeholder admin account
	v.SetDefault("admin_username", "admin")
	v.SetDefault("admin_password", "admin")

	// Overdue report defaults
	v.SetDefault("overdue_report_enabled", false)
	v.SetDefault("overdue_report_schedule", "0 8 * * *") // Daily at 08:00

	v.SetDefault("cors_allowed_origins", []string{"*"})

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Loans: Loans{
			PeriodMonths: v.GetInt("LOAN_PERIOD_MONTHS"),
		},
		Assistant: Assistant{
			APIKey:  v.GetString("ASSISTANT_API_KEY"),
			Model:   v.GetString("ASSISTANT_MODEL"),
			BaseURL: v.GetString("ASSISTANT_BASE_URL"),
		},
		Admin: Admin{
			Username: v.GetString("ADMIN_USERNAME"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
		OverdueReport: OverdueReport{
			Enabled:  v.GetBool("OVERDUE_REPORT_ENABLED"),
			Schedule: v.GetString("OVERDUE_REPORT_SCHEDULE"),
		},
		CORS: CORS{
			AllowedOrigins: v.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		},
	}
}
