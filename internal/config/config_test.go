package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "smtp", cfg.Mail.Provider)
	require.Equal(t, "Courierd", cfg.Mail.AppName)
	require.Equal(t, 10*time.Second, cfg.Mail.Timeout)
	require.Equal(t, "localhost", cfg.Mail.SMTP.Host)
	require.Equal(t, 587, cfg.Mail.SMTP.Port)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("COURIERD_MAIL_PROVIDER", "log")
	t.Setenv("COURIERD_MAIL_SENDER_ADDRESS", "noreply@example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "log", cfg.Mail.Provider)
	require.Equal(t, "noreply@example.com", cfg.Mail.Sender.Address)
}

func TestSMTPConfig_Addr(t *testing.T) {
	c := SMTPConfig{Host: "relay.example.com", Port: 2525}
	require.Equal(t, "relay.example.com:2525", c.Addr())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Mail: MailConfig{
			Provider: "smtp",
			Sender:   SenderConfig{Address: "noreply@example.com"},
			SMTP:     SMTPConfig{Host: "relay.example.com", Port: 587},
		}}
	}

	t.Run("valid smtp", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("missing sender address", func(t *testing.T) {
		cfg := valid()
		cfg.Mail.Sender.Address = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("smtp missing host", func(t *testing.T) {
		cfg := valid()
		cfg.Mail.SMTP.Host = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("smtp port out of range", func(t *testing.T) {
		cfg := valid()
		cfg.Mail.SMTP.Port = 0
		require.Error(t, cfg.Validate())
	})

	t.Run("gmail needs credentials", func(t *testing.T) {
		cfg := valid()
		cfg.Mail.Provider = "gmail"
		require.Error(t, cfg.Validate())

		cfg.Mail.Gmail.CredentialsJSON = `{"type":"service_account"}`
		require.NoError(t, cfg.Validate())
	})

	t.Run("gmail token triple", func(t *testing.T) {
		cfg := valid()
		cfg.Mail.Provider = "gmail"
		cfg.Mail.Gmail.ClientID = "id"
		cfg.Mail.Gmail.ClientSecret = "secret"
		require.Error(t, cfg.Validate(), "refresh token still missing")

		cfg.Mail.Gmail.RefreshToken = "token"
		require.NoError(t, cfg.Validate())
	})

	t.Run("resend needs api key", func(t *testing.T) {
		cfg := valid()
		cfg.Mail.Provider = "resend"
		require.Error(t, cfg.Validate())

		cfg.Mail.Resend.APIKey = "re_test_key"
		require.NoError(t, cfg.Validate())
	})

	t.Run("mailgun needs domain and key", func(t *testing.T) {
		cfg := valid()
		cfg.Mail.Provider = "mailgun"
		cfg.Mail.Mailgun.APIKey = "key-test"
		require.Error(t, cfg.Validate())

		cfg.Mail.Mailgun.Domain = "mg.example.com"
		require.NoError(t, cfg.Validate())
	})

	t.Run("log provider needs only sender", func(t *testing.T) {
		cfg := valid()
		cfg.Mail.Provider = "log"
		require.NoError(t, cfg.Validate())
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := valid()
		cfg.Mail.Provider = "carrier-pigeon"
		require.Error(t, cfg.Validate())
	})
}
