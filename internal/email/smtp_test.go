package email

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewSMTPSender_ConfigValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  SMTPConfig
	}{
		{"missing host", SMTPConfig{Port: 587, SenderAddress: "noreply@example.com"}},
		{"zero port", SMTPConfig{Host: "relay.example.com", SenderAddress: "noreply@example.com"}},
		{"port out of range", SMTPConfig{Host: "relay.example.com", Port: 70000, SenderAddress: "noreply@example.com"}},
		{"missing sender", SMTPConfig{Host: "relay.example.com", Port: 587}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewSMTPSender(tt.cfg)
			require.Error(t, err)
		})
	}
}

func TestNewSMTPSender_DefaultTimeout(t *testing.T) {
	t.Parallel()

	s, err := NewSMTPSender(SMTPConfig{Host: "relay.example.com", Port: 587, SenderAddress: "noreply@example.com"})
	require.NoError(t, err)
	require.Equal(t, defaultSMTPTimeout, s.cfg.Timeout)
	require.Equal(t, "smtp", s.Name())
}

func TestSMTPSender_BuildMessage(t *testing.T) {
	t.Parallel()

	s, err := NewSMTPSender(SMTPConfig{
		Host:          "relay.example.com",
		Port:          587,
		SenderAddress: "noreply@example.com",
		SenderName:    "Courierd",
	})
	require.NoError(t, err)

	raw := string(s.buildMessage(Email{
		To:       "a@example.com",
		Subject:  "Confirm your account",
		HTMLBody: "<p>hello</p>",
	}))

	require.True(t, strings.HasPrefix(raw, "From: Courierd <noreply@example.com>\r\n"))
	require.Contains(t, raw, "To: a@example.com\r\n")
	require.Contains(t, raw, "Subject: Confirm your account\r\n")
	require.Contains(t, raw, "Content-Type: text/html; charset=UTF-8\r\n")
	require.Contains(t, raw, "\r\n\r\n<p>hello</p>")
}

func TestSMTPSender_BuildMessagePlainText(t *testing.T) {
	t.Parallel()

	s, err := NewSMTPSender(SMTPConfig{
		Host:          "relay.example.com",
		Port:          587,
		SenderAddress: "noreply@example.com",
	})
	require.NoError(t, err)

	raw := string(s.buildMessage(Email{
		To:       "a@example.com",
		Subject:  "hi",
		TextBody: "hello",
	}))

	require.True(t, strings.HasPrefix(raw, "From: noreply@example.com\r\n"))
	require.Contains(t, raw, "Content-Type: text/plain; charset=UTF-8\r\n")
}

func TestSMTPSender_ConnectionRefused(t *testing.T) {
	t.Parallel()

	// Grab a free port, then close the listener so nothing accepts on it.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	s, err := NewSMTPSender(SMTPConfig{
		Host:          "127.0.0.1",
		Port:          port,
		SenderAddress: "noreply@example.com",
		Timeout:       2 * time.Second,
	})
	require.NoError(t, err)

	err = s.Send(context.Background(), Email{To: "a@example.com", Subject: "hi", TextBody: "hello"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to connect")
}
