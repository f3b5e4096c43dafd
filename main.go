package main

import (
	"fmt"
	"os"

	"was/internal/bootstrap"
	"was/internal/config"
	"was/internal/logger"
	"was/internal/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           version.Name,
	Short:         "A small HTTP/1.1 web application server.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetVersion())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to load before reading the environment (default .env)")
	rootCmd.AddCommand(serveCmd, versionCmd)
}

func serve() error {
	if early, err := logger.New("info", false); err == nil {
		zap.ReplaceGlobals(early)
	}

	conf, err := config.MustLoad(envFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(conf.LogLevel(), conf.DevMode())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	zap.S().Infof("Starting %s", version.GetVersion())

	app, err := bootstrap.New(conf, os.DirFS(conf.ResourceRoot()))
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	return app.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
