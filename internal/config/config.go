package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type JWTConfig struct {
	Secret        string `yaml:"secret"`
	ExpiresDays   int    `yaml:"expires_days"`
	CookieExpires int    `yaml:"cookie_expires_days"`
}

type TelegramConfig struct {
	BotToken    string `yaml:"bot_token"`
	AdminChatID int64  `yaml:"admin_chat_id"`
	DryRun      bool   `yaml:"dry_run"`
}

type Config struct {
	Server struct {
		Port    int  `yaml:"port"`
		DevMode bool `yaml:"dev_mode"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	JWT   JWTConfig `yaml:"jwt"`
	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
	} `yaml:"email"`
	OriginURL string         `yaml:"origin_url"` // фронтенд, для ссылок в письмах
	Telegram  TelegramConfig `yaml:"telegram"`
	Files     struct {
		RootDir string `yaml:"root_dir"`
	} `yaml:"files"`
}

func LoadConfig() *Config {
	path := os.Getenv("ATTENDIFY_CONFIG")
	if path == "" {
		path = "config/config.yaml"
	}
	f, err := os.Open(path)
	if err != nil {
		panic("Failed to open config: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config: " + err.Error())
	}

	if cfg.JWT.ExpiresDays == 0 {
		cfg.JWT.ExpiresDays = 1
	}
	if cfg.JWT.CookieExpires == 0 {
		cfg.JWT.CookieExpires = cfg.JWT.ExpiresDays
	}
	if cfg.Files.RootDir == "" {
		cfg.Files.RootDir = "./files"
	}
	return &cfg
}
