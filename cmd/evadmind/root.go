package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"evcharge-admin-backend/config"
	"evcharge-admin-backend/internal/logging"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "evadmind",
	Short: "EV charging network operator dashboard backend",
	Long: `evadmind serves the operator dashboard API: stations, chargers, users,
payments, pricing, platform fees, CPO integration, analytics and support.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	defaultPath := os.Getenv("CONFIG_PATH")
	if defaultPath == "" {
		defaultPath = "./config/config.yaml"
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultPath, "config file path (env CONFIG_PATH)")
	rootCmd.AddCommand(serveCmd, seedCmd)
}

// setup loads the configuration and builds the logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	log.Info("configuration loaded", zap.String("path", cfgFile))
	return cfg, log, nil
}
