package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haskel/carprice/internal/config"
	"github.com/haskel/carprice/internal/logger"
)

var (
	// Global flags
	cfgFile   string
	jsonOut   bool
	verbose   bool
	logLevel  string
	logFormat string

	// Version info (set from main)
	Version = "0.1.0"

	// Populated by the root pre-run hook.
	appConfig *config.Config
	log       *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "carprice",
	Short: "Car price estimation from mileage",
	Long: `Carprice fits a linear model of car price against mileage with batch
gradient descent and uses the fitted coefficients (theta0, theta1) to predict
the price of a car from its mileage.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json (overrides config)")
}

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if err := cfg.Logging.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	log = logger.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	return nil
}
