package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lanewatch/lanewatch/internal/cli"
	"github.com/lanewatch/lanewatch/internal/common"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "lanewatch",
		Short: "🚚 Supply chain lane analytics",
		Long: `lanewatch: a CLI for slicing supply chain order data.

Import order history once, then pivot it across markets, segments and time,
stress-test pricing and SLA scenarios, and project demand forward.`,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/lanewatch/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("db", "", "snapshot database path (default: $HOME/.config/lanewatch/lanewatch.db)")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("database.path", rootCmd.PersistentFlags().Lookup("db"))

	// Add commands
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(snapshotsCmd())
	rootCmd.AddCommand(kpisCmd())
	rootCmd.AddCommand(opsCmd())
	rootCmd.AddCommand(breakdownCmd())
	rootCmd.AddCommand(pivotCmd())
	rootCmd.AddCommand(whatifCmd())
	rootCmd.AddCommand(forecastCmd())
	rootCmd.AddCommand(insightsCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Set up signal handling
	interrupts := cli.NewInterruptHandler(os.Stdout)
	ctx := interrupts.HandleInterrupts(context.Background())

	err := rootCmd.ExecuteContext(ctx)

	if err != nil && !interrupts.WasInterrupted() {
		fmt.Fprintln(os.Stderr, cli.FormatError(common.UserMessage(err)))
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		viper.AddConfigPath(fmt.Sprintf("%s/.config/lanewatch", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("LANEWATCH")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	// Set up logging
	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging() error {
	level := viper.GetString("logging.level")
	format := viper.GetString("logging.format")

	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	switch format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s", format)
	}

	return common.SetupLogger(slogLevel, format)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			slog.Info("lanewatch version", "version", version)
		},
	}
}
