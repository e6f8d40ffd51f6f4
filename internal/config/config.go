package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Mail MailConfig `mapstructure:"mail"`
	Log  LogConfig  `mapstructure:"log"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MailConfig holds email delivery configuration
type MailConfig struct {
	// Provider selects the delivery transport: "smtp", "gmail", "resend",
	// "mailgun", or "log" (development, no network).
	Provider string `mapstructure:"provider"`
	// AppName is the application name shown in generated emails
	AppName string `mapstructure:"app_name"`
	// Timeout bounds a single delivery attempt at the transport
	Timeout time.Duration `mapstructure:"timeout"`

	Sender  SenderConfig  `mapstructure:"sender"`
	SMTP    SMTPConfig    `mapstructure:"smtp"`
	Gmail   GmailConfig   `mapstructure:"gmail"`
	Resend  ResendConfig  `mapstructure:"resend"`
	Mailgun MailgunConfig `mapstructure:"mailgun"`
}

// SenderConfig holds the "From" identity used by all providers
type SenderConfig struct {
	// Address is the sender email address
	Address string `mapstructure:"address"`
	// Name is the display name for the sender
	Name string `mapstructure:"name"`
}

// SMTPConfig holds SMTP relay configuration
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// Addr returns the relay address in host:port form
func (c SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GmailConfig holds Gmail API configuration
type GmailConfig struct {
	// CredentialsJSON is the service account credentials JSON content
	CredentialsJSON string `mapstructure:"credentials_json"`
	// ClientID for OAuth2 token-based auth (alternative to service account)
	ClientID string `mapstructure:"client_id"`
	// ClientSecret for OAuth2 token-based auth
	ClientSecret string `mapstructure:"client_secret"`
	// RefreshToken for OAuth2 token-based auth
	RefreshToken string `mapstructure:"refresh_token"`
}

// ResendConfig holds Resend API configuration
type ResendConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// MailgunConfig holds Mailgun API configuration
type MailgunConfig struct {
	Domain string `mapstructure:"domain"`
	APIKey string `mapstructure:"api_key"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/courierd")

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Bind environment variables
	v.SetEnvPrefix("COURIERD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Mail defaults
	v.SetDefault("mail.provider", "smtp")
	v.SetDefault("mail.app_name", "Courierd")
	v.SetDefault("mail.timeout", "10s")
	v.SetDefault("mail.sender.address", "")
	v.SetDefault("mail.sender.name", "")
	v.SetDefault("mail.smtp.host", "localhost")
	v.SetDefault("mail.smtp.port", 587)
	v.SetDefault("mail.smtp.username", "")
	v.SetDefault("mail.smtp.password", "")
	v.SetDefault("mail.gmail.credentials_json", "")
	v.SetDefault("mail.gmail.client_id", "")
	v.SetDefault("mail.gmail.client_secret", "")
	v.SetDefault("mail.gmail.refresh_token", "")
	v.SetDefault("mail.resend.api_key", "")
	v.SetDefault("mail.mailgun.domain", "")
	v.SetDefault("mail.mailgun.api_key", "")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Validate checks that the selected provider has every field it needs.
// Missing mail credentials must surface here, at startup, not at first send.
func (c *Config) Validate() error {
	if c.Mail.Sender.Address == "" {
		return errors.New("mail.sender.address is required")
	}

	switch strings.ToLower(c.Mail.Provider) {
	case "smtp":
		if c.Mail.SMTP.Host == "" {
			return errors.New("mail.smtp.host is required for the smtp provider")
		}
		if c.Mail.SMTP.Port <= 0 || c.Mail.SMTP.Port > 65535 {
			return fmt.Errorf("mail.smtp.port %d is out of range", c.Mail.SMTP.Port)
		}
	case "gmail":
		hasServiceAccount := c.Mail.Gmail.CredentialsJSON != ""
		hasToken := c.Mail.Gmail.ClientID != "" && c.Mail.Gmail.ClientSecret != "" && c.Mail.Gmail.RefreshToken != ""
		if !hasServiceAccount && !hasToken {
			return errors.New("gmail provider needs mail.gmail.credentials_json or the client_id/client_secret/refresh_token triple")
		}
	case "resend":
		if c.Mail.Resend.APIKey == "" {
			return errors.New("mail.resend.api_key is required for the resend provider")
		}
	case "mailgun":
		if c.Mail.Mailgun.Domain == "" || c.Mail.Mailgun.APIKey == "" {
			return errors.New("mail.mailgun.domain and mail.mailgun.api_key are required for the mailgun provider")
		}
	case "log":
		// nothing to configure
	default:
		return fmt.Errorf("unknown mail provider %q", c.Mail.Provider)
	}

	return nil
}
