// Package main provides the entry point for the resume gap HTTP API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"alfredoptarigan/resume-gap/internal/config"
	"alfredoptarigan/resume-gap/internal/logger"
	"alfredoptarigan/resume-gap/internal/services"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "unknown"

var v = viper.New()

var rootCmd = &cobra.Command{
	Use:           "resume-gap",
	Short:         "Resume versus job description gap analysis API",
	Long:          "resume-gap serves an HTTP API that extracts technical keywords from job descriptions, scores resume coverage and suggests improvements.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("port", "", "Port to listen on (overrides PORT)")
	flags.Bool("debug", false, "Enable debug logging (overrides LOG_DEBUG)")
	flags.Bool("json", false, "Write JSON logs (overrides LOG_JSON)")

	_ = v.BindPFlag(config.KeyPort, flags.Lookup("port"))
	_ = v.BindPFlag(config.KeyLogDebug, flags.Lookup("debug"))
	_ = v.BindPFlag(config.KeyLogJSON, flags.Lookup("json"))

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	dotEnvErr := config.LoadDotEnv()

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if dotEnvErr != nil {
		log.Debug("no .env file loaded", zap.Error(dotEnvErr))
	}
	log.Info("config loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.Int64("max_file_size", cfg.Upload.MaxFileSize),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gemini, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, log, cfg.Log.MaxPreview)
	if err != nil {
		return fmt.Errorf("failed to initialize Gemini: %w", err)
	}
	log.Info("gemini client ready", zap.String(logger.FieldModel, gemini.Model()))

	advisor := services.NewAdvisorService(gemini, log)
	app := newApp(cfg, log, advisor, services.NewDocumentParser())

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", cfg.Addr()), zap.String("version", version))
		errCh <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	if err := app.ShutdownWithContext(context.Background()); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return err
	}
	return nil
}
