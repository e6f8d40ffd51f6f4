package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/courierd/courierd/internal/config"
	"github.com/courierd/courierd/internal/email"
	"github.com/courierd/courierd/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "courierd",
	Short: "Transactional email composition and delivery tool",
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Compose and deliver one notification",
	RunE:  runSend,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a notification to stdout without delivering it",
	RunE:  runPreview,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and construct the delivery provider",
	RunE:  runCheck,
}

var (
	flagTo   string
	flagKind string
	flagSet  []string
)

func init() {
	sendCmd.Flags().StringVar(&flagTo, "to", "", "recipient email address")
	sendCmd.Flags().StringVar(&flagKind, "kind", "", "notification kind")
	sendCmd.Flags().StringArrayVar(&flagSet, "set", nil, "template context entry in key=value form (repeatable)")

	previewCmd.Flags().StringVar(&flagKind, "kind", "", "notification kind")
	previewCmd.Flags().StringArrayVar(&flagSet, "set", nil, "template context entry in key=value form (repeatable)")

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	return cfg, log, nil
}

func parseContext(entries []string) (map[string]any, error) {
	tmplCtx := make(map[string]any, len(entries))
	for _, entry := range entries {
		key, value, found := strings.Cut(entry, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --set entry %q, expected key=value", entry)
		}
		tmplCtx[key] = value
	}
	return tmplCtx, nil
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	tmplCtx, err := parseContext(flagSet)
	if err != nil {
		return err
	}

	msg, err := email.NewMessage(flagTo, email.Kind(flagKind), tmplCtx)
	if err != nil {
		return err
	}

	ctx := context.Background()
	sender, err := email.NewSenderFromConfig(ctx, cfg.Mail, log)
	if err != nil {
		return err
	}

	svc := email.NewService(email.NewRegistry(cfg.Mail.AppName), sender, log)
	result, err := svc.Send(ctx, msg)
	if err != nil {
		return err
	}
	if !result.Sent() {
		return fmt.Errorf("delivery failed via %s: %s", result.Provider, result.Error)
	}

	fmt.Printf("sent %s to %s via %s (attempt %s)\n", flagKind, flagTo, result.Provider, result.AttemptID)
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	tmplCtx, err := parseContext(flagSet)
	if err != nil {
		return err
	}

	// Preview never touches the network, so any syntactically valid
	// recipient will do.
	msg, err := email.NewMessage("preview@localhost.localdomain", email.Kind(flagKind), tmplCtx)
	if err != nil {
		return err
	}

	registry := email.NewRegistry(cfg.Mail.AppName)
	composer, ok := registry.Lookup(msg.Kind())
	if !ok {
		return &email.UnsupportedKindError{Kind: msg.Kind()}
	}

	content, err := composer.Compose(msg)
	if err != nil {
		return err
	}

	fmt.Printf("Subject: %s\nFormat: %s\n\n%s\n", content.Subject, content.Format, content.Body)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := email.NewSenderFromConfig(context.Background(), cfg.Mail, log); err != nil {
		return fmt.Errorf("provider construction failed: %w", err)
	}

	registry := email.NewRegistry(cfg.Mail.AppName)
	kinds := make([]string, 0, len(registry.Kinds()))
	for _, k := range registry.Kinds() {
		kinds = append(kinds, string(k))
	}

	fmt.Printf("config ok: provider=%s sender=%s kinds=%s\n",
		cfg.Mail.Provider, cfg.Mail.Sender.Address, strings.Join(kinds, ","))
	return nil
}
