package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iwvelando/home-buyer/internal/config"
	"github.com/iwvelando/home-buyer/internal/tui"
	"github.com/iwvelando/home-buyer/internal/wizard"
	"github.com/iwvelando/home-buyer/pkg/constants"
)

// version is overridden at build time via -ldflags.
var version = "development"

// initializeLogger creates a zap logger based on configuration and CLI override.
// Without an output file the logger is a no-op: the terminal belongs to the
// interface, so logs only ever go to a file.
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	if loggingConfig.OutputFile == "" {
		return zap.NewNop(), nil
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	// Ensure the directory exists
	if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
		}
	}

	// Test if we can create/write to the file
	if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
	} else {
		_ = file.Close()
	}

	zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
	zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}

	return zapConfig.Build()
}

func run(cmd *cobra.Command, configLocation, logLevel string) error {
	// An explicitly passed config path must exist; the default location is
	// optional and falls back to built-in defaults.
	conf, err := config.LoadConfiguration(configLocation, cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s, %v", configLocation, err)
	}

	logger, err := initializeLogger(conf.Logging, logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger, %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	for _, warning := range conf.Validate() {
		logger.Warn(warning, zap.String("op", "main"))
	}

	session := wizard.NewSession(logger, conf.Defaults.ToWizardDefaults(), conf.Export.ToExportPaths())
	program := tea.NewProgram(tui.NewModel(session), tea.WithAltScreen())

	logger.Info(fmt.Sprintf("starting home-buyer %s", version),
		zap.String("op", "main"),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interface error, %v", err)
	}
	logger.Info("session ended", zap.String("op", "main"))
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the home-buyer version",
		Run: func(*cobra.Command, []string) {
			fmt.Println(version)
		},
	}
}

func main() {
	var (
		configLocation string
		logLevel       string
	)

	rootCmd := &cobra.Command{
		Use:   "home-buyer",
		Short: "Interactive home purchase and mortgage cost calculator",
		Long: "home-buyer walks through the numbers of a house purchase and projects " +
			"the monthly schedule: principal, interest, recurring costs, equity, and " +
			"the opportunity cost of the capital tied up along the way.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, configLocation, logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configLocation, "config", constants.DefaultConfigFile, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
