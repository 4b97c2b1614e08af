package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment
// variables. It is built once at startup and passed by value; nothing
// mutates it afterwards.
type Config struct {
	BotToken    string   `envconfig:"BOT_TOKEN" required:"true"`
	DatabaseURL string   `envconfig:"DATABASE_URL" required:"true"`
	AdminChatID int64    `envconfig:"ADMIN_CHAT_ID" required:"true"` // admin identity for gated commands
	ChatID      int64    `envconfig:"CHAT_ID" required:"true"`       // primary chat for the daily dispatch
	NotifyTimes []string `envconfig:"NOTIFY_TIMES" default:"03:30"`  // daily fire times, HH:MM
	Departments []string `envconfig:"DEPARTMENTS" default:"%перационная%,%роект%,%мультимед%,%руковод%"`
	LogLevel    string   `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
	HTTPAddr    string   `envconfig:"HTTP_ADDR" default:":8080"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
