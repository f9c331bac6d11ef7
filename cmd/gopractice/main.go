package main

import (
	"fmt"
	"os"

	"github.com/SalahEddineGhamri/gopractice/internal/config"
	"github.com/SalahEddineGhamri/gopractice/internal/logging"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Shared per-invocation state
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gopractice",
	Short: "gopractice - classic programming exercises as a Go CLI",
	Long: `gopractice collects small classic exercises reworked in Go:

  fileop    line-oriented file manipulation (multiply fixed lines, append)
  pets      factory and abstract-factory demonstrations
  registry  shared-state (singleton) demonstration
  grid      CSV grid median filtering
  words     word frequency counting

Each subcommand is a standalone drill; they share nothing but configuration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		logger, err = logging.Build(cfg.Logging.Level, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logger.With(zap.String("run_id", uuid.NewString()))
		logger.Debug("configuration loaded",
			zap.String("config_path", configPath),
			zap.String("command", cmd.Name()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "gopractice.yaml", "path to config file")

	rootCmd.AddCommand(fileopCmd)
	rootCmd.AddCommand(petsCmd)
	rootCmd.AddCommand(registryCmd)
	rootCmd.AddCommand(gridCmd)
	rootCmd.AddCommand(wordsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
