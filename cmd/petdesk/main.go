package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pet-store-admin/internal/config"
	"pet-store-admin/internal/desk"
	"pet-store-admin/internal/petservice"
	"pet-store-admin/internal/platform/logger"
	"pet-store-admin/internal/tui"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "petdesk",
		Short:        "Manage pets from the terminal",
		Long:         `petdesk lists, creates, edits and deletes pets stored in the Pet Service API.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadWith(v)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("api-url", "", "Pet Service base URL (env PETDESK_API_URL)")
	flags.Duration("timeout", 0, "per-request timeout (env PETDESK_TIMEOUT)")
	flags.String("log-file", "", "log file; the terminal belongs to the UI (env PETDESK_LOG_FILE)")
	flags.String("log-level", "", "debug|info|warn|error (env LOG_LEVEL)")

	for key, flag := range map[string]string{
		config.KeyDeskAPIURL:  "api-url",
		config.KeyDeskTimeout: "timeout",
		config.KeyDeskLogFile: "log-file",
		config.KeyLogLevel:    "log-level",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	return cmd
}

func run(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logFile, err := os.OpenFile(cfg.Desk.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    "petdesk",
		Output: logFile,
	})

	client, err := petservice.NewClient(petservice.Config{
		BaseURL: cfg.Desk.APIURL,
		Timeout: cfg.Desk.Timeout,
		Log:     log,
	})
	if err != nil {
		return fmt.Errorf("pet service client: %w", err)
	}

	log.Info("petdesk starting", map[string]any{"api_url": cfg.Desk.APIURL, "timeout": cfg.Desk.Timeout.String()})

	model := tui.New(ctx, desk.New(client, log))
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		log.Error("tui exited with error", map[string]any{"err": err})
		return err
	}

	log.Info("petdesk stopped", nil)
	return nil
}
