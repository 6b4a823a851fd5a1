package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/safetyworks/depot-report/pkg/server"
	"github.com/safetyworks/depot-report/pkg/services/config"
	"github.com/safetyworks/depot-report/pkg/services/report"
	"github.com/safetyworks/depot-report/pkg/store/duckdb"
	duckdbreport "github.com/safetyworks/depot-report/pkg/store/duckdb/report"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the depot compliance reporting service",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "depot-report.yaml",
		"Path to the service configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Warn().Err(err).Msgf("Config file `%s` not usable, falling back to defaults", cfgPath)
		defaults := config.Default()
		cfg = &defaults
	}

	// Environment overrides win over the config file.
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Port = port
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.DbPath = dbPath
	}

	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath: cfg.DbPath,
	})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	reportStore, err := duckdbreport.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create report store: %w", err)
	}
	reportManager := report.NewManager(db, reportStore)

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	logger.Info().Msgf("Report database at `%s`", cfg.DbPath)

	api := server.NewWebAPI(server.Config{
		Addr:            addr,
		ShutdownTimeout: time.Duration(cfg.ShutdownTimeout) * time.Second,
		Dependencies: server.Dependencies{
			Reports: reportManager,
			Logger:  logger,
		},
	})

	return api.Start()
}
